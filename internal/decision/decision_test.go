package decision

import "testing"

func TestParseChoice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Choice
		wantErr bool
	}{
		{raw: "ACT", want: ChoiceAct},
		{raw: "wait", want: ChoiceWait},
		{raw: " Kill ", want: ChoiceKill},
		{raw: "", wantErr: true},
		{raw: "PIVOT", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseChoice(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseChoice(%q) error = nil, want error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseChoice(%q) error = %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseChoice(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestChoicesIsClosedAndOrdered(t *testing.T) {
	t.Parallel()

	got := Choices()
	want := []Choice{ChoiceAct, ChoiceWait, ChoiceKill}
	if len(got) != len(want) {
		t.Fatalf("len(Choices()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Choices()[%d] = %q, want %q", i, got[i], want[i])
		}
		if !got[i].Valid() {
			t.Fatalf("Choices()[%d] reported invalid", i)
		}
	}
	if ChoiceNone.Valid() {
		t.Fatal("ChoiceNone.Valid() = true, want false")
	}
}

func TestOutcomeLabel(t *testing.T) {
	t.Parallel()

	if got := (Outcome{Verdict: ChoiceWait, Qualifier: "DO NOT SCALE"}).Label(); got != "DO NOT SCALE" {
		t.Fatalf("Label() = %q, want %q", got, "DO NOT SCALE")
	}
	if got := (Outcome{Verdict: ChoiceAct}).Label(); got != "ACT" {
		t.Fatalf("Label() = %q, want %q", got, "ACT")
	}
}
