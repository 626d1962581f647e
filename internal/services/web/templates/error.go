package templates

import "net/http"

// ErrorView is an error page. Message overrides the status default body.
type ErrorView struct {
	StatusCode int
	Message    string
}

// ErrorPageTitle returns the localized title for statusCode.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	return T(loc, "error.title."+errorKeySuffix(statusCode))
}

func errorMessage(view ErrorView, loc Localizer) string {
	if view.Message != "" {
		return view.Message
	}
	return T(loc, "error.body."+errorKeySuffix(view.StatusCode))
}

func errorKeySuffix(statusCode int) string {
	switch normalizeErrorStatus(statusCode) {
	case http.StatusBadRequest:
		return "bad_request"
	case http.StatusNotFound:
		return "not_found"
	default:
		return "server"
	}
}

func normalizeErrorStatus(statusCode int) int {
	switch statusCode {
	case http.StatusBadRequest, http.StatusNotFound:
		return statusCode
	default:
		if statusCode >= http.StatusInternalServerError {
			return statusCode
		}
		return http.StatusInternalServerError
	}
}
