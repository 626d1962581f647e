package decision

import "fmt"

// Tier classifies how a visitor's choice relates to the preferred one.
type Tier string

const (
	TierAligned               Tier = "aligned"
	TierRiskUnderestimated    Tier = "risk_underestimated"
	TierConvictionOverBalance Tier = "conviction_over_balance"
)

const (
	ScoreAligned               = 92
	ScoreRiskUnderestimated    = 68
	ScoreConvictionOverBalance = 48
)

const (
	FeedbackAligned               = "Strong alignment. You read the same signals I did and landed on the same call."
	FeedbackRiskUnderestimated    = "You identified the opportunity, but underestimated the risk. ACT and WAIT share the thesis; they differ on timing and exposure."
	FeedbackConvictionOverBalance = "Conviction over signal balance. The call leaned on one strong signal while the rest of the evidence pointed elsewhere."
)

// Result is the score and canned feedback for one choice.
type Result struct {
	Score    int
	Tier     Tier
	Feedback string
}

// Evaluate scores userChoice against preferred. The middle tier is the
// literal ACT/WAIT pair; every other mismatch falls through to the lowest
// tier. Both arguments must be valid choices.
func Evaluate(userChoice, preferred Choice) Result {
	if !userChoice.Valid() || !preferred.Valid() {
		panic(fmt.Sprintf("decision: evaluate %q against %q", userChoice, preferred))
	}
	switch {
	case userChoice == preferred:
		return Result{Score: ScoreAligned, Tier: TierAligned, Feedback: FeedbackAligned}
	case isActWaitPair(userChoice, preferred):
		return Result{Score: ScoreRiskUnderestimated, Tier: TierRiskUnderestimated, Feedback: FeedbackRiskUnderestimated}
	default:
		return Result{Score: ScoreConvictionOverBalance, Tier: TierConvictionOverBalance, Feedback: FeedbackConvictionOverBalance}
	}
}

func isActWaitPair(a, b Choice) bool {
	return (a == ChoiceAct && b == ChoiceWait) || (a == ChoiceWait && b == ChoiceAct)
}
