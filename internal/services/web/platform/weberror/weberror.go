// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	apperrors "github.com/decisionroom/decisionroom/internal/services/web/platform/errors"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/httpx"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/pagerender"
	webtemplates "github.com/decisionroom/decisionroom/internal/services/web/templates"
)

// PublicMessage resolves a user-safe localized error message. Errors without
// a localization key get "" so the page falls back to its status copy.
func PublicMessage(loc webtemplates.Localizer, err error) string {
	if err == nil || loc == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		return strings.TrimSpace(loc.Sprintf(key))
	}
	return ""
}

// WriteModuleError writes a localized error page for err. Server errors are
// logged; their details never reach the page.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if statusCode >= http.StatusInternalServerError {
		path := "-"
		if r != nil && r.URL != nil {
			path = r.URL.Path
		}
		log.Printf("web error status=%d path=%s request_id=%s err=%v", statusCode, path, httpx.RequestIDFrom(r), err)
	}

	if httpx.IsHTMXRequest(r) {
		// htmx skips 4xx/5xx swaps unless the response names its target.
		w.Header().Set("HX-Retarget", "#"+webtemplates.MainID)
		w.Header().Set("HX-Reswap", "outerHTML")
	}

	loc, lang := pagerender.Localize(w, r)
	page := pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Lang:       lang,
		Loc:        loc,
		Fragment: webtemplates.ErrorPage(webtemplates.ErrorView{
			StatusCode: statusCode,
			Message:    PublicMessage(loc, err),
		}, loc),
	}
	if renderErr := pagerender.WritePage(w, r, deps, page); renderErr != nil {
		log.Printf("web error page render failed status=%d err=%v", statusCode, renderErr)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// NotFound returns a handler that answers with the 404 page.
func NotFound(deps module.Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteModuleError(w, r, apperrors.E(apperrors.KindNotFound, "page not found"), deps)
	})
}
