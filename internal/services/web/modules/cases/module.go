// Package cases serves the decision cases list and single-case pages.
package cases

import (
	"net/http"

	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/weberror"
	"github.com/decisionroom/decisionroom/internal/services/web/routepath"
)

// Module provides the cases routes.
type Module struct {
	deps module.Dependencies
}

// New returns a cases module rendering from deps.
func New(deps module.Dependencies) Module {
	return Module{deps: deps}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "cases" }

// Mount wires the cases list and detail routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.deps)
	mux.HandleFunc(http.MethodGet+" "+routepath.Cases, h.handleList)
	mux.HandleFunc(http.MethodGet+" "+routepath.CasesPrefix+"{$}", h.redirectToList)
	mux.HandleFunc(http.MethodGet+" "+routepath.CasePattern, h.handleDetail)
	mux.Handle(routepath.CasesPrefix, weberror.NotFound(m.deps))
	return module.Mount{Prefix: routepath.CasesPrefix, Handler: mux}, nil
}
