// Package public serves the landing, hire and health routes plus the site-wide
// not-found fallback.
package public

import (
	"net/http"
	"strings"

	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/weberror"
	"github.com/decisionroom/decisionroom/internal/services/web/routepath"
)

// Module provides the root routes.
type Module struct {
	deps   module.Dependencies
	id     string
	prefix string
}

// New returns the public module rendering from deps.
func New(deps module.Dependencies) Module {
	return Module{deps: deps, id: "public", prefix: routepath.Root}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	id := strings.TrimSpace(m.id)
	if id == "" {
		return "public"
	}
	return id
}

// Mount wires public routes under the root prefix. Paths no other module
// owns fall through to the not-found page.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.deps)
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.Hire, h.handleHire)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.Handle(routepath.Root, weberror.NotFound(m.deps))
	prefix := strings.TrimSpace(m.prefix)
	if prefix == "" {
		prefix = routepath.Root
	}
	return module.Mount{Prefix: prefix, Handler: mux}, nil
}
