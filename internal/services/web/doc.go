// Package web serves the Decision Room site: the landing page, the case
// studies, the decision simulator and the hire page.
//
// Every page is read-only. Per-page UI state travels in the query string and
// is rebuilt on each request, so handlers share nothing but the immutable
// content tables.
package web
