// Package templates holds the templ components for the web pages. The
// *_templ.go files are generated from the .templ sources.
package templates

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.977 generate

import (
	"strings"

	webi18n "github.com/decisionroom/decisionroom/internal/services/web/i18n"
)

// htmxScriptURL pins the htmx release the layout loads.
const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// MainID is the element htmx swaps on navigation.
const MainID = "main"

// LanguageOption is a language switch entry in the navigation.
type LanguageOption = webi18n.LanguageOption

// Chrome carries the shared page frame: title, language and navigation.
type Chrome struct {
	Title        string
	Lang         string
	Loc          Localizer
	CurrentPath  string
	ContactEmail string
	Languages    []LanguageOption
}

// PageTitle appends the brand name to title.
func PageTitle(title string, loc Localizer) string {
	brand := T(loc, "core.brand")
	title = strings.TrimSpace(title)
	if title == "" || title == brand {
		return brand
	}
	return title + " | " + brand
}

func documentLang(lang string) string {
	if lang == "" {
		return "en-US"
	}
	return lang
}

func isSection(currentPath string, section string) bool {
	return currentPath == section || strings.HasPrefix(currentPath, section+"/")
}
