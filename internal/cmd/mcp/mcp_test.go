package mcp

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	want := Config{HTTPAddr: "localhost:8081", Transport: "stdio"}
	if cfg != want {
		t.Fatalf("ParseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("DECISION_ROOM_MCP_TRANSPORT", "HTTP")
	t.Setenv("DECISION_ROOM_MCP_HTTP_ADDR", "0.0.0.0:9081")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	want := Config{HTTPAddr: "0.0.0.0:9081", Transport: "http"}
	if cfg != want {
		t.Fatalf("ParseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("DECISION_ROOM_MCP_TRANSPORT", "http")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-transport", "stdio", "-http-addr", "127.0.0.1:7000"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	want := Config{HTTPAddr: "127.0.0.1:7000", Transport: "stdio"}
	if cfg != want {
		t.Fatalf("ParseConfig() = %+v, want %+v", cfg, want)
	}
}

func TestParseConfigRejectsUnknownTransport(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-transport", "grpc"}); err == nil {
		t.Fatal("expected error for unknown transport")
	}
}
