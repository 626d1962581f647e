package viewstate

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/decisionroom/decisionroom/internal/decision"
)

const (
	ScenarioParam  = "scenario"
	ChoiceParam    = "choice"
	RecruiterParam = "recruiter"
)

// ScenarioSource is the scenario table as seen by simulator navigation.
type ScenarioSource interface {
	Len() int
	Preferred(index int) decision.Choice
}

// Simulator tracks the active scenario, the visitor's choice and its score.
type Simulator struct {
	source        ScenarioSource
	scoring       bool
	index         int
	choice        decision.Choice
	result        *decision.Result
	recruiterMode bool
}

// NewSimulator starts at the first scenario with no choice. When scoring is
// true, SelectChoice also computes a score against the preferred choice.
func NewSimulator(source ScenarioSource, scoring bool) *Simulator {
	return &Simulator{source: source, scoring: scoring}
}

// Index returns the active scenario index.
func (s *Simulator) Index() int {
	return s.index
}

// Len returns the number of scenarios.
func (s *Simulator) Len() int {
	if s.source == nil {
		return 0
	}
	return s.source.Len()
}

// Choice returns the current choice, if any.
func (s *Simulator) Choice() (decision.Choice, bool) {
	return s.choice, s.choice != decision.ChoiceNone
}

// Result returns the computed score, if any.
func (s *Simulator) Result() (decision.Result, bool) {
	if s.result == nil {
		return decision.Result{}, false
	}
	return *s.result, true
}

// RecruiterMode reports whether the preferred answer is disclosed.
func (s *Simulator) RecruiterMode() bool {
	return s.recruiterMode
}

// SelectChoice records choice and, with scoring enabled, its score.
func (s *Simulator) SelectChoice(choice decision.Choice) {
	if !choice.Valid() {
		panic(fmt.Sprintf("viewstate: select invalid choice %q", choice))
	}
	s.choice = choice
	s.result = nil
	if !s.scoring {
		return
	}
	preferred := s.source.Preferred(s.index)
	if !preferred.Valid() {
		return
	}
	result := decision.Evaluate(choice, preferred)
	s.result = &result
}

// CanAdvance reports whether a later scenario exists.
func (s *Simulator) CanAdvance() bool {
	return s.index < s.Len()-1
}

// CanRetreat reports whether an earlier scenario exists.
func (s *Simulator) CanRetreat() bool {
	return s.index > 0
}

// Advance moves to the next scenario. At the last scenario it does nothing.
func (s *Simulator) Advance() {
	if !s.CanAdvance() {
		return
	}
	s.moveTo(s.index + 1)
}

// Retreat moves to the previous scenario. At the first scenario it does nothing.
func (s *Simulator) Retreat() {
	if !s.CanRetreat() {
		return
	}
	s.moveTo(s.index - 1)
}

// ToggleRecruiterMode flips preferred-answer disclosure.
func (s *Simulator) ToggleRecruiterMode() {
	s.recruiterMode = !s.recruiterMode
}

// Clone returns an independent copy for computing link targets.
func (s *Simulator) Clone() *Simulator {
	clone := *s
	if s.result != nil {
		result := *s.result
		clone.result = &result
	}
	return &clone
}

func (s *Simulator) moveTo(index int) {
	s.index = index
	s.choice = decision.ChoiceNone
	s.result = nil
}

// seek positions the simulator at index clamped to the table bounds.
func (s *Simulator) seek(index int) {
	if last := s.Len() - 1; index > last {
		index = last
	}
	if index < 0 {
		index = 0
	}
	s.moveTo(index)
}

// ParseSimulator rebuilds simulator state from query values. Out-of-range
// scenario indexes are clamped, including ones too large for an int; malformed indexes and unknown choices are
// reported as errors.
func ParseSimulator(values url.Values, source ScenarioSource, scoring bool) (*Simulator, error) {
	sim := NewSimulator(source, scoring)
	if raw := strings.TrimSpace(values.Get(ScenarioParam)); raw != "" {
		index, err := strconv.Atoi(raw)
		switch {
		case errors.Is(err, strconv.ErrRange):
			index = sim.Len()
			if strings.HasPrefix(raw, "-") {
				index = 0
			}
		case err != nil:
			return nil, fmt.Errorf("scenario %q is not a number", raw)
		}
		sim.seek(index)
	}
	if raw := strings.TrimSpace(values.Get(ChoiceParam)); raw != "" {
		choice, err := decision.ParseChoice(raw)
		if err != nil {
			return nil, err
		}
		sim.SelectChoice(choice)
	}
	if isTruthy(values.Get(RecruiterParam)) {
		sim.ToggleRecruiterMode()
	}
	return sim, nil
}

// Query encodes the simulator state.
func (s *Simulator) Query() url.Values {
	values := url.Values{}
	values.Set(ScenarioParam, strconv.Itoa(s.index))
	if s.choice != decision.ChoiceNone {
		values.Set(ChoiceParam, s.choice.String())
	}
	if s.recruiterMode {
		values.Set(RecruiterParam, "1")
	}
	return values
}
