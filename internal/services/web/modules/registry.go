package modules

import (
	"github.com/decisionroom/decisionroom/internal/services/web/modules/assets"
	"github.com/decisionroom/decisionroom/internal/services/web/modules/cases"
	"github.com/decisionroom/decisionroom/internal/services/web/modules/public"
	"github.com/decisionroom/decisionroom/internal/services/web/modules/simulator"
)

// Registry builds the module set mounted by the web service.
type Registry struct{}

// NewRegistry returns the default module registry.
func NewRegistry() Registry {
	return Registry{}
}

// Build returns every module wired to deps.
func (Registry) Build(deps Dependencies) []Module {
	return DefaultModules(deps)
}

// DefaultModules returns the site modules in mount order.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		public.New(deps),
		cases.New(deps),
		simulator.New(deps),
		assets.New(),
	}
}
