package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func TestResolveTagPrecedence(t *testing.T) {
	t.Parallel()

	t.Run("query param wins", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=pt-BR", nil)
		req.Header.Set("Accept-Language", "en")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

		tag, persist := ResolveTag(req)
		if tag.String() != "pt-BR" {
			t.Fatalf("expected pt-BR, got %s", tag.String())
		}
		if !persist {
			t.Fatal("expected persist to be true")
		}
	})

	t.Run("cookie wins over accept-language", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "pt-BR")
		req.AddCookie(&http.Cookie{Name: LangCookieName, Value: "en"})

		tag, persist := ResolveTag(req)
		if tag.String() != "en-US" {
			t.Fatalf("expected en-US, got %s", tag.String())
		}
		if persist {
			t.Fatal("expected persist to be false")
		}
	})

	t.Run("accept-language fallback", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
		req.Header.Set("Accept-Language", "pt-BR, en;q=0.9")

		tag, persist := ResolveTag(req)
		if tag.String() != "pt-BR" {
			t.Fatalf("expected pt-BR, got %s", tag.String())
		}
		if persist {
			t.Fatal("expected persist to be false")
		}
	})

	t.Run("unsupported query falls through", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "http://example.com/?lang=xx", nil)
		tag, persist := ResolveTag(req)
		if tag != Default() || persist {
			t.Fatalf("ResolveTag() = %v, %v, want default without persist", tag, persist)
		}
	})
}

func TestResolveLocalizerPersistsExplicitChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cases?lang=pt-BR", nil)
	loc, lang := ResolveLocalizer(rr, req)
	if lang != "pt-BR" {
		t.Fatalf("lang = %q, want pt-BR", lang)
	}
	if got := loc.Sprintf("core.nav.cases"); got != "Casos" {
		t.Fatalf("core.nav.cases = %q, want Casos", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != LangCookieName || cookies[0].Value != "pt-BR" {
		t.Fatalf("cookies = %+v, want %s=pt-BR", cookies, LangCookieName)
	}

	rr = httptest.NewRecorder()
	_, lang = ResolveLocalizer(rr, httptest.NewRequest(http.MethodGet, "/cases", nil))
	if lang != "en-US" {
		t.Fatalf("lang = %q, want en-US", lang)
	}
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("expected no cookie without explicit choice")
	}
}

func TestLanguageOptionsKeepQuery(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/simulator?scenario=1&choice=ACT", nil)
	got := LanguageOptions(Printer(language.AmericanEnglish), "en-US", req)
	want := []LanguageOption{
		{Tag: "en-US", Label: "English", URL: "/simulator?choice=ACT&lang=en-US&scenario=1", Active: true},
		{Tag: "pt-BR", Label: "Português (Brasil)", URL: "/simulator?choice=ACT&lang=pt-BR&scenario=1"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("LanguageOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestLanguageURLDefaultsPath(t *testing.T) {
	t.Parallel()

	if got := LanguageURL("", "%zz", "pt-BR"); got != "/?lang=pt-BR" {
		t.Fatalf("LanguageURL() = %q, want /?lang=pt-BR", got)
	}
}
