package cases

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	"github.com/decisionroom/decisionroom/internal/services/web/routepath"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"
)

func serve(t *testing.T, method, target string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New(module.DefaultDependencies("")).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	req := httptest.NewRequest(method, target, nil)
	for key, value := range header {
		req.Header.Set(key, value)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func parse(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func byID(root *html.Node, id string) *html.Node {
	nodes := findAll(root, func(n *html.Node) bool { return attr(n, "id") == id })
	if len(nodes) == 0 {
		return nil
	}
	return nodes[0]
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func TestModuleMountsCasesPrefix(t *testing.T) {
	t.Parallel()

	m := New(module.Dependencies{})
	if m.ID() != "cases" {
		t.Fatalf("ID() = %q, want cases", m.ID())
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.CasesPrefix {
		t.Fatalf("prefix = %q, want %q", mount.Prefix, routepath.CasesPrefix)
	}
}

func TestCasesListRendersEveryCaseHidden(t *testing.T) {
	t.Parallel()

	rr := serve(t, http.MethodGet, routepath.Cases, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := parse(t, rr.Body.String())
	cards := findAll(doc, func(n *html.Node) bool { return n.Data == "article" && hasClass(n, "case-card") })
	if len(cards) != 8 {
		t.Fatalf("cards = %d, want 8", len(cards))
	}
	for _, card := range cards {
		if got := attr(card, "data-revealed"); got != "false" {
			t.Fatalf("card %s data-revealed = %q, want false", attr(card, "id"), got)
		}
	}

	first := byID(doc, "case-01")
	if first == nil {
		t.Fatal("case-01 card missing")
	}
	signals := findAll(first, func(n *html.Node) bool { return n.Data == "li" && n.Parent != nil && hasClass(n.Parent, "signal-list") })
	if len(signals) != 4 {
		t.Fatalf("case 01 signals = %d, want 4", len(signals))
	}
	if strings.Contains(textOf(first), "DO NOT SCALE") {
		t.Fatal("hidden card should not render the decision")
	}
	toggles := findAll(first, func(n *html.Node) bool { return n.Data == "a" && hasClass(n, "toggle") })
	if len(toggles) != 1 {
		t.Fatalf("toggles = %d, want 1", len(toggles))
	}
	if got, want := attr(toggles[0], "href"), "/cases?open=01#case-01"; got != want {
		t.Fatalf("toggle href = %q, want %q", got, want)
	}
}

func TestCasesListRevealsToggledCase(t *testing.T) {
	t.Parallel()

	rr := serve(t, http.MethodGet, routepath.Cases+"?open=01", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := parse(t, rr.Body.String())
	first := byID(doc, "case-01")
	if first == nil {
		t.Fatal("case-01 card missing")
	}
	if !strings.Contains(textOf(first), "DO NOT SCALE") {
		t.Fatal("revealed card missing decision label")
	}
	var rationale []string
	for _, li := range findAll(first, func(n *html.Node) bool { return n.Data == "li" && n.Parent != nil && hasClass(n.Parent, "rationale") }) {
		rationale = append(rationale, textOf(li))
	}
	want := []string{
		"Demand was real, but unit economics were fragile.",
		"Rising CAC meant every extra rupee bought less growth than the last.",
		"Scaling spend without stock would burn cash and disappoint new buyers.",
		"Revisit once supply is ready and CAC stabilises for two consecutive weeks.",
	}
	if diff := cmp.Diff(want, rationale); diff != "" {
		t.Fatalf("rationale mismatch (-want +got):\n%s", diff)
	}
	badges := findAll(first, func(n *html.Node) bool { return n.Data == "span" && hasClass(n, "badge-wait") })
	if len(badges) != 1 {
		t.Fatalf("wait badges = %d, want 1", len(badges))
	}

	toggle := findAll(first, func(n *html.Node) bool { return n.Data == "a" && hasClass(n, "toggle") })[0]
	if got := attr(toggle, "href"); got != "/cases#case-01" {
		t.Fatalf("hide href = %q, want /cases#case-01", got)
	}
	if second := byID(doc, "case-02"); attr(second, "data-revealed") != "false" {
		t.Fatal("toggling case 01 must not reveal case 02")
	}
}

func TestCasesListIgnoresUnknownIDs(t *testing.T) {
	t.Parallel()

	rr := serve(t, http.MethodGet, routepath.Cases+"?open=99&open=03", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	doc := parse(t, rr.Body.String())
	revealed := findAll(doc, func(n *html.Node) bool { return n.Data == "article" && attr(n, "data-revealed") == "true" })
	if len(revealed) != 1 || attr(revealed[0], "id") != "case-03" {
		t.Fatalf("revealed cards = %d, want only case-03", len(revealed))
	}
	for _, toggle := range findAll(doc, func(n *html.Node) bool { return n.Data == "a" && hasClass(n, "toggle") }) {
		if strings.Contains(attr(toggle, "href"), "99") {
			t.Fatalf("unknown ID leaked into toggle link %q", attr(toggle, "href"))
		}
	}
}

func TestCasesListHTMXReturnsFragment(t *testing.T) {
	t.Parallel()

	rr := serve(t, http.MethodGet, routepath.Cases+"?open=02", map[string]string{"HX-Request": "true"})
	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Fatal("htmx response should not include the document")
	}
	if !strings.Contains(body, `<main id="main"`) {
		t.Fatalf("htmx response missing main element: %s", body)
	}
	if got := rr.Header().Get("Vary"); got != "HX-Request" {
		t.Fatalf("Vary = %q, want HX-Request", got)
	}
}

func TestCaseDetailRevealIsOneWay(t *testing.T) {
	t.Parallel()

	hidden := serve(t, http.MethodGet, routepath.Case("01"), nil)
	if hidden.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", hidden.Code, http.StatusOK)
	}
	doc := parse(t, hidden.Body.String())
	reveal := findAll(doc, func(n *html.Node) bool { return n.Data == "a" && hasClass(n, "reveal") })
	if len(reveal) != 1 || attr(reveal[0], "href") != "/cases/01?reveal=1" {
		t.Fatalf("reveal link = %v, want /cases/01?reveal=1", reveal)
	}
	if strings.Contains(hidden.Body.String(), "DO NOT SCALE") {
		t.Fatal("hidden detail should not render the decision")
	}

	revealed := serve(t, http.MethodGet, routepath.Case("01")+"?reveal=1", nil)
	body := revealed.Body.String()
	if !strings.Contains(body, "DO NOT SCALE") {
		t.Fatal("revealed detail missing decision")
	}
	doc = parse(t, body)
	controls := findAll(doc, func(n *html.Node) bool {
		return n.Data == "a" && (hasClass(n, "reveal") || hasClass(n, "toggle"))
	})
	if len(controls) != 0 {
		t.Fatalf("revealed detail renders %d reveal/hide controls, want 0", len(controls))
	}
}

func TestCaseDetailUnknownIDRendersNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(t, http.MethodGet, routepath.Case("99"), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), "That case does not exist.") {
		t.Fatalf("body missing case not found copy: %s", rr.Body.String())
	}
}

func TestCasesTrailingSlashRedirectsToList(t *testing.T) {
	t.Parallel()

	rr := serve(t, http.MethodGet, routepath.CasesPrefix+"?open=01", nil)
	if rr.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMovedPermanently)
	}
	if got := rr.Header().Get("Location"); got != "/cases?open=01" {
		t.Fatalf("Location = %q, want /cases?open=01", got)
	}
}
