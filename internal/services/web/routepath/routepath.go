// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root            = "/"
	Health          = "/up"
	Hire            = "/hire"
	Cases           = "/cases"
	CasesPrefix     = "/cases/"
	CasePattern     = CasesPrefix + "{caseID}"
	Simulator       = "/simulator"
	SimulatorPrefix = "/simulator/"
	StaticPrefix    = "/static/"
	SiteCSS         = StaticPrefix + "site.css"
	SiteJS          = StaticPrefix + "site.js"
	MCP             = "/mcp"
	ContactScheme   = "mailto:"
)

// Case returns the single-case route.
func Case(caseID string) string {
	return CasesPrefix + escapeSegment(caseID)
}

// WithQuery appends an encoded query to path. Empty queries leave path as is.
func WithQuery(path string, query url.Values) string {
	if len(query) == 0 {
		return path
	}
	encoded := query.Encode()
	if encoded == "" {
		return path
	}
	return path + "?" + encoded
}

// Contact returns a mailto link for address, or "" when address is blank.
func Contact(address string) string {
	address = strings.TrimSpace(address)
	if address == "" {
		return ""
	}
	return ContactScheme + address
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
