package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	module "github.com/decisionroom/decisionroom/internal/services/web/module"
)

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}

func TestWritePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/cases", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, module.Dependencies{}, Page{
		Title:      "Cases",
		StatusCode: http.StatusAccepted,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if !strings.Contains(body, "<title>Cases | Decision Room</title>") {
		t.Fatalf("htmx fragment missing title: %q", body)
	}
	lower := strings.ToLower(body)
	if strings.Contains(lower, "<!doctype html") || strings.Contains(lower, "<html") {
		t.Fatal("expected htmx fragment without full document wrapper")
	}
}

func TestWritePageRendersFullDocumentWithNavigation(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/simulator?lang=pt-BR", nil)
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, module.Dependencies{ContactEmail: "me@example.com"}, Page{
		Title:    "Simulador",
		Fragment: textComponent(`<p>body</p>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{`<html lang="pt-BR">`, ">Casos</a>", `href="mailto:me@example.com"`, `<a href="/simulator" aria-current="page">`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q: %s", marker, body)
		}
	}
	if got := rr.Header().Get("Set-Cookie"); !strings.Contains(got, "dr_lang=pt-BR") {
		t.Fatalf("Set-Cookie = %q, want language preference", got)
	}
}

func TestWritePageReturnsRenderErrorWithoutWriting(t *testing.T) {
	t.Parallel()

	want := errors.New("render failed")
	rr := httptest.NewRecorder()
	err := WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), module.Dependencies{}, Page{
		Fragment: templ.ComponentFunc(func(context.Context, io.Writer) error { return want }),
	})
	if !errors.Is(err, want) {
		t.Fatalf("WritePage() error = %v, want %v", err, want)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body written on failure: %q", rr.Body.String())
	}
}
