package simulator

import (
	"net/http"

	"github.com/decisionroom/decisionroom/internal/decision"
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

func (h handlers) handleSimulator(w http.ResponseWriter, r *http.Request) {
	sim, err := viewstate.ParseSimulator(r.URL.Query(), h.deps.Scenarios, h.deps.SimulatorScoring)
	if err != nil {
		weberror.WriteModuleError(w, r, apperrors.Wrap(apperrors.KindInvalidInput, "error.invalid_simulator_state", err), h.deps)
		return
	}
	loc, lang := pagerender.Localize(w, r)
	view, ok := h.view(sim, loc)
	if !ok {
		weberror.WriteModuleError(w, r, apperrors.E(apperrors.KindUnavailable, "no simulator scenarios loaded"), h.deps)
		return
	}
	page := pagerender.Page{
		Title:    webtemplates.T(loc, "simulator.title"),
		Lang:     lang,
		Loc:      loc,
		Fragment: webtemplates.SimulatorPage(view, loc),
	}
	if err := pagerender.WritePage(w, r, h.deps, page); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
	}
}

func (handlers) redirectToSimulator(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, routepath.WithQuery(routepath.Simulator, r.URL.Query()), http.StatusMovedPermanently)
}

// view maps simulator state to the page. Every link encodes the state that
// results from applying its action to a copy of sim.
func (h handlers) view(sim *viewstate.Simulator, loc webtemplates.Localizer) (webtemplates.SimulatorView, bool) {
	scenario, ok := h.deps.Scenarios.At(sim.Index())
	if !ok {
		return webtemplates.SimulatorView{}, false
	}
	view := webtemplates.SimulatorView{
		Position:    sim.Index() + 1,
		Total:       sim.Len(),
		ScenarioID:  scenario.ID,
		Category:    scenario.Category,
		Title:       scenario.Title,
		Context:     scenario.Context,
		Signals:     scenario.Signals,
		RecruiterOn: sim.RecruiterMode(),
	}

	current, hasChoice := sim.Choice()
	for _, choice := range decision.Choices() {
		next := sim.Clone()
		next.SelectChoice(choice)
		view.Choices = append(view.Choices, webtemplates.ChoiceButtonView{
			Choice:   choice.String(),
			URL:      simulatorURL(next) + "#result",
			Selected: hasChoice && current == choice,
		})
	}
	if hasChoice {
		result := &webtemplates.SimulatorResultView{
			Choice:    current.String(),
			Reasoning: scenario.ReasoningFor(current),
		}
		if scored, ok := sim.Result(); ok {
			result.Score = scored.Score
			result.Tier = string(scored.Tier)
			result.Feedback = feedback(loc, scored)
		}
		view.Result = result
	}
	if sim.RecruiterMode() {
		view.Recruiter = &webtemplates.RecruiterView{
			Preferred:     scenario.Preferred.String(),
			Justification: scenario.Justification,
		}
	}

	toggled := sim.Clone()
	toggled.ToggleRecruiterMode()
	view.RecruiterURL = simulatorURL(toggled)
	if sim.CanRetreat() {
		previous := sim.Clone()
		previous.Retreat()
		view.PreviousURL = simulatorURL(previous)
	}
	if sim.CanAdvance() {
		next := sim.Clone()
		next.Advance()
		view.NextURL = simulatorURL(next)
	}
	return view, true
}

// feedback localizes the canned feedback for the result tier, keeping the
// scorer's English text when the catalog has no entry.
func feedback(loc webtemplates.Localizer, result decision.Result) string {
	key := "simulator.feedback." + string(result.Tier)
	if text := webtemplates.T(loc, key); text != "" && text != key {
		return text
	}
	return result.Feedback
}

func simulatorURL(sim *viewstate.Simulator) string {
	return routepath.WithQuery(routepath.Simulator, sim.Query())
}
