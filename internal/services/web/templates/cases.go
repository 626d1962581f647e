package templates

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// OutcomeView is a decision verdict and its display label.
type OutcomeView struct {
	Verdict string
	Label   string
}

// CaseCardView is one case rendered as a card.
type CaseCardView struct {
	ID        string
	Category  string
	Title     string
	Context   string
	Signals   []string
	Revealed  bool
	Outcome   OutcomeView
	Rationale []string
	DetailURL string
	// ToggleURL flips this card's reveal state; empty renders no toggle.
	ToggleURL string
}

// CasesView is the cases list page.
type CasesView struct {
	Cards []CaseCardView
}

// CaseDetailView is the single-case page. RevealURL is empty once the
// decision is revealed; the reveal cannot be undone.
type CaseDetailView struct {
	Card      CaseCardView
	RevealURL string
	BackURL   string
}

// BadgeClass returns the CSS classes for a verdict badge.
func BadgeClass(verdict string) string {
	verdict = strings.ToLower(strings.TrimSpace(verdict))
	if verdict == "" {
		return "badge"
	}
	return "badge badge-" + verdict
}

// detailCard drops the list toggle; the detail page reveals one way only.
func detailCard(card CaseCardView) CaseCardView {
	card.ToggleURL = ""
	return card
}

func showOutcomeLabel(outcome OutcomeView) bool {
	return outcome.Label != "" && outcome.Label != outcome.Verdict
}

// staggerStyle delays a card's entrance animation by its position.
func staggerStyle(index int) templ.SafeCSS {
	return templ.SafeCSS("--stagger:" + strconv.Itoa(index))
}
