// Package content holds the immutable case and scenario tables rendered by
// the site. Tables are authored as embedded YAML, validated once at package
// load, and exposed read-only.
package content

import (
	"github.com/decisionroom/decisionroom/internal/decision"
)

// Case is one entry of the decision cases list.
type Case struct {
	ID        string
	Category  string
	Title     string
	Context   string
	Signals   []string
	Outcome   decision.Outcome
	Rationale []string
}

// Scenario is one simulator prompt with authored reasoning for every choice.
type Scenario struct {
	ID            string
	Category      string
	Title         string
	Context       string
	Signals       []string
	Reasoning     map[decision.Choice]string
	Preferred     decision.Choice
	Justification string
}

// ReasoningFor returns the authored explanation for choice.
func (s Scenario) ReasoningFor(choice decision.Choice) string {
	return s.Reasoning[choice]
}

func (c Case) key() string { return c.ID }

func (c Case) clone() Case {
	c.Signals = append([]string(nil), c.Signals...)
	c.Rationale = append([]string(nil), c.Rationale...)
	return c
}

func (s Scenario) key() string { return s.ID }

func (s Scenario) clone() Scenario {
	s.Signals = append([]string(nil), s.Signals...)
	reasoning := make(map[decision.Choice]string, len(s.Reasoning))
	for choice, text := range s.Reasoning {
		reasoning[choice] = text
	}
	s.Reasoning = reasoning
	return s
}

// record is the constraint satisfied by table entries.
type record[T any] interface {
	key() string
	clone() T
}

// Table is an ordered read-only list of records. Accessors return copies so
// callers cannot alter the shared content.
type Table[T record[T]] struct {
	items []T
}

func newTable[T record[T]](items []T) Table[T] {
	return Table[T]{items: items}
}

// Len returns the number of records.
func (t Table[T]) Len() int {
	return len(t.items)
}

// At returns the record at index i.
func (t Table[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(t.items) {
		var zero T
		return zero, false
	}
	return t.items[i].clone(), true
}

// All returns every record in authored order.
func (t Table[T]) All() []T {
	out := make([]T, 0, len(t.items))
	for _, item := range t.items {
		out = append(out, item.clone())
	}
	return out
}

// Find returns the record with the given ID.
func (t Table[T]) Find(id string) (T, bool) {
	for _, item := range t.items {
		if item.key() == id {
			return item.clone(), true
		}
	}
	var zero T
	return zero, false
}

// ScenarioTable adapts the scenario table to simulator navigation.
type ScenarioTable struct {
	Table[Scenario]
}

// Preferred returns the preferred choice for scenario i.
func (t ScenarioTable) Preferred(i int) decision.Choice {
	if i < 0 || i >= len(t.items) {
		return decision.ChoiceNone
	}
	return t.items[i].Preferred
}
