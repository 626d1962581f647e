// Package assets serves the embedded stylesheet and script.
package assets

import (
	"io/fs"
	"net/http"
	"strings"

	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	"github.com/decisionroom/decisionroom/internal/services/web/routepath"
	"github.com/decisionroom/decisionroom/internal/services/web/static"
)

const cacheControl = "public, max-age=3600"

// Module provides the static asset routes.
type Module struct {
	files fs.FS
}

// New returns an assets module backed by the embedded static files.
func New() Module {
	return Module{files: static.FS}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "assets" }

// Mount serves files under the static prefix. Directory listings are not
// exposed.
func (m Module) Mount() (module.Mount, error) {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(m.files))
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", cacheControl)
		files.ServeHTTP(w, r)
	})
	mux := http.NewServeMux()
	mux.Handle(http.MethodGet+" "+routepath.StaticPrefix, handler)
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: mux}, nil
}
