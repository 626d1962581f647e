package web

import (
	"flag"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.MCPEnabled {
		t.Fatal("MCPEnabled = true, want false")
	}
	if !cfg.SimulatorScoring {
		t.Fatal("SimulatorScoring = false, want true")
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("DECISION_ROOM_WEB_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("DECISION_ROOM_CONTACT_EMAIL", "env@example.com")
	t.Setenv("DECISION_ROOM_WEB_MCP_ENABLED", "true")
	t.Setenv("DECISION_ROOM_WEB_SIMULATOR_SCORING", "false")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	want := Config{HTTPAddr: "0.0.0.0:9000", ContactEmail: "env@example.com", MCPEnabled: true}
	if cfg != want {
		t.Fatalf("ParseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("DECISION_ROOM_CONTACT_EMAIL", "env@example.com")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:9002",
		"-contact-email", "flag@example.com",
		"-mcp",
		"-simulator-scoring=false",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	want := Config{HTTPAddr: "127.0.0.1:9002", ContactEmail: "flag@example.com", MCPEnabled: true}
	if cfg != want {
		t.Fatalf("ParseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("DECISION_ROOM_WEB_MCP_ENABLED", "sometimes")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for invalid boolean")
	}
}

func TestServerConfigMountsMCPWhenEnabled(t *testing.T) {
	t.Parallel()

	cfg, err := serverConfig(Config{HTTPAddr: "localhost:0", ContactEmail: "me@example.com", MCPEnabled: true})
	if err != nil {
		t.Fatalf("serverConfig() error = %v", err)
	}
	if cfg.MCPHandler == nil {
		t.Fatal("expected MCP handler")
	}
	if cfg.ContactEmail != "me@example.com" {
		t.Fatalf("ContactEmail = %q", cfg.ContactEmail)
	}

	// The streamable handler answers a malformed POST itself.
	rr := httptest.NewRecorder()
	cfg.MCPHandler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader("not json")))
	if rr.Code == http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want MCP handler response", rr.Code)
	}
}

func TestServerConfigSkipsMCPWhenDisabled(t *testing.T) {
	t.Parallel()

	cfg, err := serverConfig(Config{HTTPAddr: "localhost:0"})
	if err != nil {
		t.Fatalf("serverConfig() error = %v", err)
	}
	if cfg.MCPHandler != nil {
		t.Fatal("expected no MCP handler")
	}
}
