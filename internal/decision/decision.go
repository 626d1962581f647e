// Package decision defines the ACT/WAIT/KILL enumeration and the scoring
// lookup used by the decision simulator.
package decision

import (
	"fmt"
	"strings"
)

// Choice is one of the three decision verdicts. The zero value means no
// choice has been made.
type Choice string

const (
	ChoiceNone Choice = ""
	ChoiceAct  Choice = "ACT"
	ChoiceWait Choice = "WAIT"
	ChoiceKill Choice = "KILL"
)

// Choices returns the enumeration in display order.
func Choices() []Choice {
	return []Choice{ChoiceAct, ChoiceWait, ChoiceKill}
}

// ParseChoice parses a verdict label case-insensitively.
func ParseChoice(raw string) (Choice, error) {
	switch Choice(strings.ToUpper(strings.TrimSpace(raw))) {
	case ChoiceAct:
		return ChoiceAct, nil
	case ChoiceWait:
		return ChoiceWait, nil
	case ChoiceKill:
		return ChoiceKill, nil
	default:
		return ChoiceNone, fmt.Errorf("unknown decision %q", raw)
	}
}

// Valid reports whether c is one of ACT, WAIT or KILL.
func (c Choice) Valid() bool {
	switch c {
	case ChoiceAct, ChoiceWait, ChoiceKill:
		return true
	default:
		return false
	}
}

// String returns the verdict label.
func (c Choice) String() string {
	return string(c)
}

// Outcome is a verdict with an optional qualifying label, such as
// WAIT / "DO NOT SCALE".
type Outcome struct {
	Verdict   Choice
	Qualifier string
}

// Label returns the qualifier when present and the verdict otherwise.
func (o Outcome) Label() string {
	if q := strings.TrimSpace(o.Qualifier); q != "" {
		return q
	}
	return o.Verdict.String()
}
