package cases

import (
	"net/http"
	"strings"

	"github.com/decisionroom/decisionroom/internal/content"
	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	apperrors "github.com/decisionroom/decisionroom/internal/services/web/platform/errors"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/pagerender"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/weberror"
	"github.com/decisionroom/decisionroom/internal/services/web/routepath"
	webtemplates "github.com/decisionroom/decisionroom/internal/services/web/templates"
	"github.com/decisionroom/decisionroom/internal/services/web/viewstate"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	open := viewstate.ParseRevealSet(r.URL.Query(), h.knownCase)
	loc, lang := pagerender.Localize(w, r)
	h.writePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "cases.title"),
		Lang:     lang,
		Loc:      loc,
		Fragment: webtemplates.CasesPage(listView(h.deps.Cases.All(), open), loc),
	})
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("caseID"))
	record, ok := h.deps.Cases.Find(id)
	if !ok {
		weberror.WriteModuleError(w, r, apperrors.EK(apperrors.KindNotFound, "error.case_not_found", "case "+id+" not found"), h.deps)
		return
	}
	flag := viewstate.ParseRevealFlag(r.URL.Query())
	loc, lang := pagerender.Localize(w, r)
	h.writePage(w, r, pagerender.Page{
		Title:    record.Title,
		Lang:     lang,
		Loc:      loc,
		Fragment: webtemplates.CaseDetailPage(detailView(record, flag), loc),
	})
}

func (handlers) redirectToList(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.WithQuery(routepath.Cases, r.URL.Query()), http.StatusMovedPermanently)
}

func (h handlers) knownCase(id string) bool {
	_, ok := h.deps.Cases.Find(id)
	return ok
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, h.deps, page); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

// listView maps every case to a card whose toggle link encodes the reveal set
// with that card flipped.
func listView(records []content.Case, open viewstate.RevealSet) webtemplates.CasesView {
	cards := make([]webtemplates.CaseCardView, 0, len(records))
	for _, record := range records {
		card := cardView(record, open.Has(record.ID))
		card.ToggleURL = routepath.WithQuery(routepath.Cases, open.Toggled(record.ID).Query()) + "#case-" + record.ID
		cards = append(cards, card)
	}
	return webtemplates.CasesView{Cards: cards}
}

func detailView(record content.Case, flag viewstate.RevealFlag) webtemplates.CaseDetailView {
	view := webtemplates.CaseDetailView{
		Card:    cardView(record, flag.Revealed()),
		BackURL: routepath.Cases,
	}
	if !flag.Revealed() {
		next := flag
		next.Reveal()
		view.RevealURL = routepath.WithQuery(routepath.Case(record.ID), next.Query())
	}
	return view
}

func cardView(record content.Case, revealed bool) webtemplates.CaseCardView {
	return webtemplates.CaseCardView{
		ID:       record.ID,
		Category: record.Category,
		Title:    record.Title,
		Context:  record.Context,
		Signals:  record.Signals,
		Revealed: revealed,
		Outcome: webtemplates.OutcomeView{
			Verdict: record.Outcome.Verdict.String(),
			Label:   record.Outcome.Label(),
		},
		Rationale: record.Rationale,
		DetailURL: routepath.Case(record.ID),
	}
}
