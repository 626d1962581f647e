// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/decisionroom/decisionroom/internal/content"
)

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}

// Dependencies carries the read-only tables and settings modules render
// from. Nothing in it is mutated by a request.
type Dependencies struct {
	Cases        content.Table[content.Case]
	Scenarios    content.ScenarioTable
	ContactEmail string

	// SimulatorScoring enables the score panel when a choice is selected.
	SimulatorScoring bool
}

// DefaultDependencies returns dependencies backed by the embedded content.
func DefaultDependencies(contactEmail string) Dependencies {
	return Dependencies{
		Cases:            content.Cases(),
		Scenarios:        content.Scenarios(),
		ContactEmail:     contactEmail,
		SimulatorScoring: true,
	}
}
