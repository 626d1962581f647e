// Package simulator serves the decision simulator page.
package simulator

import (
	"net/http"

	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/weberror"
	"github.com/decisionroom/decisionroom/internal/services/web/routepath"
)

// Module provides the simulator route.
type Module struct {
	deps module.Dependencies
}

// New returns a simulator module rendering from deps.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "simulator" }

// Mount wires the simulator route under its prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.deps)
	mux.HandleFunc(http.MethodGet+" "+routepath.Simulator, h.handleSimulator)
	mux.HandleFunc(http.MethodGet+" "+routepath.SimulatorPrefix+"{$}", h.redirectToSimulator)
	mux.Handle(routepath.SimulatorPrefix, weberror.NotFound(m.deps))
	return module.Mount{Prefix: routepath.SimulatorPrefix, Handler: mux}, nil
}
