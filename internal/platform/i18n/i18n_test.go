package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value  string
		want   language.Tag
		wantOK bool
	}{
		{value: "en-US", want: language.AmericanEnglish, wantOK: true},
		{value: "pt-BR", want: language.BrazilianPortuguese, wantOK: true},
		{value: "pt", want: language.BrazilianPortuguese, wantOK: true},
		{value: "", want: language.AmericanEnglish, wantOK: false},
		{value: "not a tag!", want: language.AmericanEnglish, wantOK: false},
		{value: "ja", want: language.AmericanEnglish, wantOK: false},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseTag(tc.value)
			if got != tc.want || ok != tc.wantOK {
				t.Fatalf("ParseTag(%q) = %v, %v, want %v, %v", tc.value, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestMatchTags(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != DefaultTag() {
		t.Fatalf("MatchTags(nil) = %v, want default", got)
	}
	if got := MatchTags([]language.Tag{language.Japanese, language.Portuguese}); got != language.BrazilianPortuguese {
		t.Fatalf("MatchTags(ja, pt) = %v, want pt-BR", got)
	}
}

func TestSupportedTagsIsACopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	tags[0] = language.Japanese
	if DefaultTag() != language.AmericanEnglish {
		t.Fatalf("DefaultTag() = %v after mutating copy", DefaultTag())
	}
}

func TestCatalogCoversSupportedTags(t *testing.T) {
	t.Parallel()

	for _, tag := range SupportedTags() {
		if !Catalog().HasLocale(tag.String()) {
			t.Errorf("catalog missing locale %s", tag)
		}
	}
}
