// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/decisionroom/decisionroom/internal/services/web/i18n"
	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/httpx"
	webtemplates "github.com/decisionroom/decisionroom/internal/services/web/templates"
)

// Page describes a module page response for both full-page and htmx flows.
// Loc and Lang are resolved from the request when Loc is nil.
type Page struct {
	Title      string
	StatusCode int
	Lang       string
	Loc        webi18n.Localizer
	Fragment   templ.Component
}

// Localize resolves the request language once per request so handlers can
// build titles and fragments with the same printer the chrome uses.
func Localize(w http.ResponseWriter, r *http.Request) (webi18n.Localizer, string) {
	return webi18n.ResolveLocalizer(w, r)
}

// WritePage renders page inside the site chrome. htmx requests receive only
// the title and main element. Nothing is written when rendering fails, so
// the caller can still send an error page.
func WritePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = templ.NopComponent
	}
	if page.Loc == nil {
		page.Loc, page.Lang = Localize(w, r)
	}

	chrome := webtemplates.Chrome{
		Title:        page.Title,
		Lang:         page.Lang,
		Loc:          page.Loc,
		ContactEmail: deps.ContactEmail,
		Languages:    webi18n.LanguageOptions(page.Loc, page.Lang, r),
	}
	if r != nil && r.URL != nil {
		chrome.CurrentPath = r.URL.Path
	}

	frame := webtemplates.Layout(chrome)
	if httpx.IsHTMXRequest(r) {
		frame = webtemplates.Fragment(chrome)
	}
	var buf bytes.Buffer
	if err := frame.Render(templ.WithChildren(httpx.RequestContext(r), fragment), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}
