package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	t.Parallel()

	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if diff := cmp.Diff([]string{"en-US", "pt-BR"}, bundle.Locales()); diff != "" {
		t.Fatalf("Locales() mismatch (-want +got):\n%s", diff)
	}
	if got := len(bundle.LocaleMessages("en-US")); got == 0 {
		t.Fatal("expected en-US messages")
	}
}

func TestEmbeddedLocalesTranslateEveryBaseKey(t *testing.T) {
	t.Parallel()

	bundle := Default()
	for _, locale := range bundle.Locales() {
		if missing := bundle.MissingKeys(locale); len(missing) != 0 {
			t.Errorf("locale %s missing keys: %v", locale, missing)
		}
	}
}

func TestMessageFallsBackToBaseLocale(t *testing.T) {
	t.Parallel()

	bundle, err := LoadFromFS(fstest.MapFS{
		"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  core.brand: Decision Room\n  core.nav.cases: Cases\n")},
		"locales/pt-BR/core.yaml": {Data: []byte("locale: pt-BR\nnamespace: core\nmessages:\n  core.nav.cases: Casos\n")},
	})
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	if got, ok := bundle.Message("pt-BR", "core.nav.cases"); !ok || got != "Casos" {
		t.Fatalf("Message(pt-BR, core.nav.cases) = %q, %v", got, ok)
	}
	if got, ok := bundle.Message("pt-BR", "core.brand"); !ok || got != "Decision Room" {
		t.Fatalf("Message(pt-BR, core.brand) = %q, %v, want base fallback", got, ok)
	}
	if _, ok := bundle.Message("pt-BR", "core.unknown"); ok {
		t.Fatal("expected unknown key to be missing")
	}
	if diff := cmp.Diff([]string{"core.brand"}, bundle.MissingKeys("pt-BR")); diff != "" {
		t.Fatalf("MissingKeys() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFSRejectsInvalidCatalogs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files fstest.MapFS
	}{
		{
			name:  "no files",
			files: fstest.MapFS{},
		},
		{
			name: "core key outside core namespace",
			files: fstest.MapFS{
				"locales/en-US/web.yaml": {Data: []byte("locale: en-US\nnamespace: web\nmessages:\n  core.bad: nope\n")},
			},
		},
		{
			name: "duplicate key across namespaces",
			files: fstest.MapFS{
				"locales/en-US/core.yaml": {Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  a.key: a\n")},
				"locales/en-US/web.yaml":  {Data: []byte("locale: en-US\nnamespace: web\nmessages:\n  a.key: b\n")},
			},
		},
		{
			name: "locale mismatch",
			files: fstest.MapFS{
				"locales/en-US/web.yaml": {Data: []byte("locale: pt-BR\nnamespace: web\nmessages:\n  a.key: a\n")},
			},
		},
		{
			name: "namespace mismatch",
			files: fstest.MapFS{
				"locales/en-US/web.yaml": {Data: []byte("locale: en-US\nnamespace: core\nmessages:\n  a.key: a\n")},
			},
		},
		{
			name: "unknown field",
			files: fstest.MapFS{
				"locales/en-US/web.yaml": {Data: []byte("locale: en-US\nnamespace: web\nextra: true\nmessages:\n  a.key: a\n")},
			},
		},
		{
			name: "empty messages",
			files: fstest.MapFS{
				"locales/en-US/web.yaml": {Data: []byte("locale: en-US\nnamespace: web\nmessages: {}\n")},
			},
		},
		{
			name: "missing base locale",
			files: fstest.MapFS{
				"locales/pt-BR/web.yaml": {Data: []byte("locale: pt-BR\nnamespace: web\nmessages:\n  a.key: a\n")},
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if _, err := LoadFromFS(tc.files); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
