package composition

import (
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	"github.com/decisionroom/decisionroom/internal/services/web/modules"
)

func TestComposeAppHandlerBuildsRegistryModules(t *testing.T) {
	t.Parallel()

	reg := &stubRegistry{
		output: []modules.Module{
			stubModule{
				id: "public",
				mount: module.Mount{
					Prefix: "/",
					Handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
						w.WriteHeader(http.StatusNoContent)
					}),
				},
			},
		},
	}

	h, err := ComposeAppHandler(ComposeInput{
		ModuleDependencies: modules.Dependencies{ContactEmail: "me@example.com"},
		Registry:           reg,
	})
	if err != nil {
		t.Fatalf("ComposeAppHandler() error = %v", err)
	}
	if got := reg.input.ContactEmail; got != "me@example.com" {
		t.Fatalf("registry dependencies contact = %q", got)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/anything", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeAppHandlerUsesDefaultRegistry(t *testing.T) {
	t.Parallel()

	h, err := ComposeAppHandler(ComposeInput{ModuleDependencies: module.DefaultDependencies("")})
	if err != nil {
		t.Fatalf("ComposeAppHandler() error = %v", err)
	}
	for path, want := range map[string]int{
		"/":          http.StatusOK,
		"/cases":     http.StatusOK,
		"/cases/01":  http.StatusOK,
		"/simulator": http.StatusOK,
		"/hire":      http.StatusOK,
		"/up":        http.StatusOK,
		"/nowhere":   http.StatusNotFound,
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != want {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, want)
		}
	}
}

func TestComposeAppHandlerPropagatesCompositionErrors(t *testing.T) {
	t.Parallel()

	reg := &stubRegistry{}
	if _, err := ComposeAppHandler(ComposeInput{Registry: reg}); err == nil {
		t.Fatal("expected error for empty module set")
	}
}

type stubRegistry struct {
	input  modules.Dependencies
	output []modules.Module
}

func (s *stubRegistry) Build(deps modules.Dependencies) []modules.Module {
	s.input = deps
	return s.output
}

type stubModule struct {
	id    string
	mount module.Mount
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount() (module.Mount, error) {
	return s.mount, nil
}
