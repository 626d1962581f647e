package templates

import "strings"

// ChoiceButtonView is one of the three decision buttons.
type ChoiceButtonView struct {
	Choice   string
	URL      string
	Selected bool
}

// SimulatorResultView is the feedback panel for a selected choice. An empty
// Tier means scoring is off and only the reasoning is shown.
type SimulatorResultView struct {
	Choice    string
	Score     int
	Tier      string
	Feedback  string
	Reasoning string
}

// RecruiterView is the preferred call shown in recruiter mode.
type RecruiterView struct {
	Preferred     string
	Justification string
}

// SimulatorView is the decision simulator page. Empty PreviousURL or
// NextURL renders the button disabled.
type SimulatorView struct {
	Position     int
	Total        int
	ScenarioID   string
	Category     string
	Title        string
	Context      string
	Signals      []string
	Choices      []ChoiceButtonView
	Result       *SimulatorResultView
	Recruiter    *RecruiterView
	RecruiterOn  bool
	RecruiterURL string
	PreviousURL  string
	NextURL      string
}

func choiceClass(choice ChoiceButtonView) string {
	class := "button choice choice-" + strings.ToLower(choice.Choice)
	if choice.Selected {
		class += " is-selected"
	}
	return class
}

func resultClass(result SimulatorResultView) string {
	if result.Tier == "" {
		return "card result"
	}
	return "card result tier-" + strings.ReplaceAll(result.Tier, "_", "-")
}
