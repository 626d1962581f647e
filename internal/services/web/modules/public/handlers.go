package public

import (
	"net/http"

	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/httpx"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/pagerender"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/weberror"
	webtemplates "github.com/decisionroom/decisionroom/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	loc, lang := pagerender.Localize(w, r)
	h.writePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "home.title"),
		Lang:     lang,
		Loc:      loc,
		Fragment: webtemplates.HomePage(loc),
	})
}

func (h handlers) handleHire(w http.ResponseWriter, r *http.Request) {
	loc, lang := pagerender.Localize(w, r)
	h.writePage(w, r, pagerender.Page{
		Title:    webtemplates.T(loc, "hire.title"),
		Lang:     lang,
		Loc:      loc,
		Fragment: webtemplates.HirePage(webtemplates.HireView{ContactEmail: h.deps.ContactEmail}, loc),
	})
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"cases":     h.deps.Cases.Len(),
		"scenarios": h.deps.Scenarios.Len(),
	})
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.Page) {
	if err := pagerender.WritePage(w, r, h.deps, page); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}
