// Package composition assembles the web module registry into the root handler.
package composition

import (
	"net/http"

	webapp "github.com/decisionroom/decisionroom/internal/services/web/app"
	"github.com/decisionroom/decisionroom/internal/services/web/modules"
)

// ModuleRegistry builds web module sets from shared dependencies.
type ModuleRegistry interface {
	Build(modules.Dependencies) []modules.Module
}

// ComposeInput describes the contracts needed to compose the application mux.
type ComposeInput struct {
	ModuleDependencies modules.Dependencies
	Registry           ModuleRegistry
}

// ComposeAppHandler builds the web app handler from the registry's modules.
func ComposeAppHandler(input ComposeInput) (http.Handler, error) {
	registry := input.Registry
	if registry == nil {
		registry = modules.NewRegistry()
	}
	return webapp.BuildRootHandler(webapp.Config{
		Modules: registry.Build(input.ModuleDependencies),
	})
}
