package public

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	"github.com/decisionroom/decisionroom/internal/services/web/routepath"
)

func newMount(t *testing.T) http.Handler {
	t.Helper()
	mount, err := New(module.DefaultDependencies("me@example.com")).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.Root {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.Root)
	}
	return mount.Handler
}

func TestModuleIDReturnsPublic(t *testing.T) {
	t.Parallel()

	if got := New(module.Dependencies{}).ID(); got != "public" {
		t.Fatalf("ID() = %q, want %q", got, "public")
	}
	if got := (Module{}).ID(); got != "public" {
		t.Fatalf("zero ID() = %q, want %q", got, "public")
	}
}

func TestMountServesPublicPages(t *testing.T) {
	t.Parallel()

	handler := newMount(t)
	tests := []struct {
		path    string
		markers []string
	}{
		{path: routepath.Root, markers: []string{"I build systems that", "turn data into decisions", "Built by Abhishek", `href="/cases"`, `href="/simulator"`, `href="/hire"`}},
		{path: routepath.Hire, markers: []string{"<title>Why Hire Me | Decision Room</title>", "What I bring to your team", `href="mailto:me@example.com"`}},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
				t.Fatalf("content-type = %q, want text/html", got)
			}
			body := rr.Body.String()
			for _, marker := range tc.markers {
				if !strings.Contains(body, marker) {
					t.Fatalf("body missing %q", marker)
				}
			}
		})
	}
}

func TestMountServesHeadForReads(t *testing.T) {
	t.Parallel()

	handler := newMount(t)
	for _, path := range []string{routepath.Root, routepath.Hire, routepath.Health} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodHead, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("HEAD %s status = %d, want %d", path, rr.Code, http.StatusOK)
		}
	}
}

func TestHealthReportsContentCounts(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newMount(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	var payload struct {
		Status    string `json:"status"`
		Cases     int    `json:"cases"`
		Scenarios int    `json:"scenarios"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode health: %v", err)
	}
	if payload.Status != "ok" || payload.Cases != 8 || payload.Scenarios != 3 {
		t.Fatalf("health = %+v", payload)
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newMount(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/does-not-exist", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if body := rr.Body.String(); !strings.Contains(body, "Page not found") {
		t.Fatalf("body missing not found copy: %s", body)
	}
}

func TestHomeRendersPortugueseWhenRequested(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, routepath.Root, nil)
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9")
	newMount(t).ServeHTTP(rr, req)
	body := rr.Body.String()
	if !strings.Contains(body, `<html lang="pt-BR">`) {
		t.Fatalf("body missing pt-BR document: %s", body)
	}
	if got := rr.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("Accept-Language should not persist a cookie, got %q", got)
	}
}

func TestHireRendersPortugueseCopy(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, routepath.Hire+"?lang=pt-BR", nil)
	newMount(t).ServeHTTP(rr, req)
	body := rr.Body.String()
	for _, marker := range []string{"<h1>Por que me contratar</h1>", "O que eu trago para o seu time"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %s", marker, body)
		}
	}
}
