package weberror

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	webi18n "github.com/decisionroom/decisionroom/internal/services/web/i18n"
	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	apperrors "github.com/decisionroom/decisionroom/internal/services/web/platform/errors"
	"golang.org/x/text/language"
)

func TestPublicMessageUsesLocalizationKey(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.BrazilianPortuguese)
	err := apperrors.EK(apperrors.KindNotFound, "error.case_not_found", "case 99 not found")
	if got := PublicMessage(loc, err); got != "Esse caso não existe." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(loc, errors.New("db exploded")); got != "" {
		t.Fatalf("PublicMessage(plain) = %q, want empty", got)
	}
	if got := PublicMessage(nil, err); got != "" {
		t.Fatalf("PublicMessage(nil loc) = %q, want empty", got)
	}
}

func TestWriteModuleErrorRendersStatusPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		marker string
	}{
		{name: "invalid input", err: apperrors.EK(apperrors.KindInvalidInput, "error.invalid_simulator_state", "bad"), status: http.StatusBadRequest, marker: "The simulator link is not valid."},
		{name: "not found", err: apperrors.E(apperrors.KindNotFound, "missing"), status: http.StatusNotFound, marker: "Page not found"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			WriteModuleError(rr, httptest.NewRequest(http.MethodGet, "/simulator", nil), tc.err, module.Dependencies{})
			if rr.Code != tc.status {
				t.Fatalf("status = %d, want %d", rr.Code, tc.status)
			}
			if body := rr.Body.String(); !strings.Contains(body, tc.marker) {
				t.Fatalf("body missing %q: %s", tc.marker, body)
			}
		})
	}
}

func TestWriteModuleErrorLogsServerErrorsWithoutLeakingDetails(t *testing.T) {
	prevWriter := log.Writer()
	defer log.SetOutput(prevWriter)
	var buffer bytes.Buffer
	log.SetOutput(&buffer)

	rr := httptest.NewRecorder()
	WriteModuleError(rr, httptest.NewRequest(http.MethodGet, "/cases", nil), errors.New("secret detail"), module.Dependencies{})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	if strings.Contains(rr.Body.String(), "secret detail") {
		t.Fatal("server error detail leaked into the page")
	}
	if !strings.Contains(buffer.String(), "err=secret detail") {
		t.Fatalf("log = %q, want error detail", buffer.String())
	}
}

func TestNotFoundHandler(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	req.Header.Set("HX-Request", "true")
	NotFound(module.Dependencies{}).ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if strings.Contains(rr.Body.String(), "<html") {
		t.Fatal("htmx 404 should render a fragment")
	}
	if got := rr.Header().Get("HX-Retarget"); got != "#main" {
		t.Fatalf("HX-Retarget = %q, want %q", got, "#main")
	}
	if got := rr.Header().Get("HX-Reswap"); got != "outerHTML" {
		t.Fatalf("HX-Reswap = %q, want %q", got, "outerHTML")
	}
}

func TestWriteModuleErrorLeavesFullPagesUntargeted(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteModuleError(rr, httptest.NewRequest(http.MethodGet, "/cases/99", nil), apperrors.E(apperrors.KindNotFound, "missing"), module.Dependencies{})
	if rr.Header().Get("HX-Retarget") != "" || rr.Header().Get("HX-Reswap") != "" {
		t.Fatalf("full page carries htmx headers: %v", rr.Header())
	}
}
