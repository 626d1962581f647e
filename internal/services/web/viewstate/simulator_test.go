package viewstate

import (
	"net/url"
	"testing"

	"github.com/decisionroom/decisionroom/internal/decision"
)

type fakeScenarios []decision.Choice

func (f fakeScenarios) Len() int { return len(f) }

func (f fakeScenarios) Preferred(i int) decision.Choice {
	if i < 0 || i >= len(f) {
		return decision.ChoiceNone
	}
	return f[i]
}

var threeScenarios = fakeScenarios{decision.ChoiceWait, decision.ChoiceKill, decision.ChoiceAct}

func TestSimulatorStartsAtFirstScenarioWithoutChoice(t *testing.T) {
	t.Parallel()

	sim := NewSimulator(threeScenarios, true)
	if sim.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", sim.Index())
	}
	if _, ok := sim.Choice(); ok {
		t.Fatal("Choice() ok = true, want false")
	}
	if _, ok := sim.Result(); ok {
		t.Fatal("Result() ok = true, want false")
	}
}

func TestSimulatorSelectChoiceScoresAgainstPreferred(t *testing.T) {
	t.Parallel()

	tests := []struct {
		choice decision.Choice
		score  int
	}{
		{decision.ChoiceAct, 68},
		{decision.ChoiceWait, 92},
		{decision.ChoiceKill, 48},
	}
	for _, tc := range tests {
		sim := NewSimulator(threeScenarios, true)
		sim.SelectChoice(tc.choice)
		got, ok := sim.Choice()
		if !ok || got != tc.choice {
			t.Fatalf("Choice() = %q, %t, want %q, true", got, ok, tc.choice)
		}
		result, ok := sim.Result()
		if !ok {
			t.Fatalf("Result() ok = false after SelectChoice(%s)", tc.choice)
		}
		if result.Score != tc.score {
			t.Fatalf("SelectChoice(%s) score = %d, want %d", tc.choice, result.Score, tc.score)
		}
	}
}

func TestSimulatorWithoutScoringStoresChoiceOnly(t *testing.T) {
	t.Parallel()

	sim := NewSimulator(threeScenarios, false)
	sim.SelectChoice(decision.ChoiceAct)
	if _, ok := sim.Choice(); !ok {
		t.Fatal("Choice() ok = false, want true")
	}
	if _, ok := sim.Result(); ok {
		t.Fatal("Result() ok = true with scoring disabled")
	}
}

func TestSimulatorRetreatAtFirstIsNoOp(t *testing.T) {
	t.Parallel()

	sim := NewSimulator(threeScenarios, true)
	sim.SelectChoice(decision.ChoiceKill)
	sim.Retreat()
	if sim.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", sim.Index())
	}
	if choice, ok := sim.Choice(); !ok || choice != decision.ChoiceKill {
		t.Fatalf("Choice() = %q, %t after no-op retreat, want KILL kept", choice, ok)
	}
	if _, ok := sim.Result(); !ok {
		t.Fatal("Result() cleared by no-op retreat")
	}
	if sim.CanRetreat() {
		t.Fatal("CanRetreat() = true at first scenario")
	}
}

func TestSimulatorAdvanceAtLastIsNoOp(t *testing.T) {
	t.Parallel()

	sim := NewSimulator(threeScenarios, true)
	sim.Advance()
	sim.Advance()
	if sim.Index() != 2 {
		t.Fatalf("Index() = %d, want 2", sim.Index())
	}
	if sim.CanAdvance() {
		t.Fatal("CanAdvance() = true at last scenario")
	}
	sim.SelectChoice(decision.ChoiceAct)
	sim.Advance()
	if sim.Index() != 2 {
		t.Fatalf("Index() = %d after advance at last, want 2", sim.Index())
	}
	if _, ok := sim.Choice(); !ok {
		t.Fatal("Choice() cleared by no-op advance")
	}
}

func TestSimulatorMovesResetChoiceAndScore(t *testing.T) {
	t.Parallel()

	sim := NewSimulator(threeScenarios, true)
	sim.SelectChoice(decision.ChoiceWait)
	sim.Advance()
	if sim.Index() != 1 {
		t.Fatalf("Index() = %d, want 1", sim.Index())
	}
	if _, ok := sim.Choice(); ok {
		t.Fatal("Choice() kept after Advance")
	}
	if _, ok := sim.Result(); ok {
		t.Fatal("Result() kept after Advance")
	}

	sim.SelectChoice(decision.ChoiceKill)
	sim.Retreat()
	if sim.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", sim.Index())
	}
	if _, ok := sim.Choice(); ok {
		t.Fatal("Choice() kept after Retreat")
	}
	if _, ok := sim.Result(); ok {
		t.Fatal("Result() kept after Retreat")
	}
}

func TestSimulatorRecruiterModeIsIndependent(t *testing.T) {
	t.Parallel()

	sim := NewSimulator(threeScenarios, true)
	sim.ToggleRecruiterMode()
	if !sim.RecruiterMode() {
		t.Fatal("RecruiterMode() = false after toggle")
	}
	if _, ok := sim.Choice(); ok {
		t.Fatal("recruiter mode made a choice")
	}
	if _, ok := sim.Result(); ok {
		t.Fatal("recruiter mode produced a score")
	}
	sim.SelectChoice(decision.ChoiceAct)
	sim.Advance()
	if !sim.RecruiterMode() {
		t.Fatal("navigation cleared recruiter mode")
	}
	sim.ToggleRecruiterMode()
	if sim.RecruiterMode() {
		t.Fatal("RecruiterMode() = true after second toggle")
	}
}

func TestSimulatorCloneIsIndependent(t *testing.T) {
	t.Parallel()

	sim := NewSimulator(threeScenarios, true)
	sim.SelectChoice(decision.ChoiceAct)
	next := sim.Clone()
	next.Advance()
	if sim.Index() != 0 {
		t.Fatalf("original Index() = %d after clone advanced, want 0", sim.Index())
	}
	if _, ok := sim.Result(); !ok {
		t.Fatal("original lost its result after clone advanced")
	}
}

func TestParseSimulator(t *testing.T) {
	t.Parallel()

	sim, err := ParseSimulator(url.Values{ScenarioParam: {"1"}, ChoiceParam: {"act"}, RecruiterParam: {"1"}}, threeScenarios, true)
	if err != nil {
		t.Fatalf("ParseSimulator() error = %v", err)
	}
	if sim.Index() != 1 {
		t.Fatalf("Index() = %d, want 1", sim.Index())
	}
	result, ok := sim.Result()
	if !ok || result.Score != 48 {
		t.Fatalf("Result() = %+v, %t, want score 48", result, ok)
	}
	if !sim.RecruiterMode() {
		t.Fatal("RecruiterMode() = false, want true")
	}
	want := url.Values{ScenarioParam: {"1"}, ChoiceParam: {"ACT"}, RecruiterParam: {"1"}}
	if got := sim.Query().Encode(); got != want.Encode() {
		t.Fatalf("Query() = %q, want %q", got, want.Encode())
	}
}

func TestParseSimulatorClampsIndex(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]int{
		"-4":                    0,
		"99":                    2,
		"2":                     2,
		"99999999999999999999":  2,
		"-99999999999999999999": 0,
	} {
		sim, err := ParseSimulator(url.Values{ScenarioParam: {raw}}, threeScenarios, true)
		if err != nil {
			t.Fatalf("ParseSimulator(%q) error = %v", raw, err)
		}
		if sim.Index() != want {
			t.Fatalf("ParseSimulator(%q).Index() = %d, want %d", raw, sim.Index(), want)
		}
	}
}

func TestParseSimulatorRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, values := range []url.Values{
		{ScenarioParam: {"two"}},
		{ChoiceParam: {"PIVOT"}},
	} {
		if _, err := ParseSimulator(values, threeScenarios, true); err == nil {
			t.Fatalf("ParseSimulator(%v) error = nil, want error", values)
		}
	}
}
