package service

import (
	"context"
	"encoding/json"
	"net"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/decisionroom/decisionroom/internal/services/mcp/domain"
	"github.com/google/go-cmp/cmp"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func connectInMemory(t *testing.T, ctx context.Context, server *Server) *mcp.ClientSession {
	t.Helper()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	if _, err := server.MCPServer().Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("server connect: %v", err)
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callTool[O any](t *testing.T, ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) O {
	t.Helper()
	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if res.IsError {
		t.Fatalf("CallTool(%s) returned tool error: %+v", name, res.Content)
	}
	var out O
	for _, c := range res.Content {
		if text, ok := c.(*mcp.TextContent); ok {
			if err := json.Unmarshal([]byte(text.Text), &out); err != nil {
				t.Fatalf("unmarshal %s result: %v (text: %s)", name, err, text.Text)
			}
			return out
		}
	}
	t.Fatalf("CallTool(%s) returned no text content", name)
	return out
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer()
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return server
}

func TestServerListsDecisionTools(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))
	tools, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	want := []string{
		"decision_case_get",
		"decision_cases_list",
		"decision_evaluate",
		"decision_scenario_answer",
		"decision_scenarios_list",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("tool names mismatch (-want +got):\n%s", diff)
	}
}

func TestServerAnswersScenarioOverProtocol(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))

	list := callTool[domain.ScenarioListResult](t, ctx, session, "decision_scenarios_list", map[string]any{})
	if len(list.Scenarios) != 3 {
		t.Fatalf("scenarios = %d, want 3", len(list.Scenarios))
	}
	answer := callTool[domain.ScenarioAnswerResult](t, ctx, session, "decision_scenario_answer", map[string]any{
		"scenario_id": list.Scenarios[0].ID,
		"choice":      "KILL",
	})
	if answer.Score != 48 || answer.Tier != "conviction_over_balance" {
		t.Fatalf("answer = %+v", answer)
	}

	evaluated := callTool[domain.EvaluateResult](t, ctx, session, "decision_evaluate", map[string]any{
		"choice":    "WAIT",
		"preferred": "ACT",
	})
	if evaluated.Score != 68 {
		t.Fatalf("evaluate score = %d, want 68", evaluated.Score)
	}

	revealed := callTool[domain.CaseResult](t, ctx, session, "decision_case_get", map[string]any{"id": "01", "reveal": true})
	if revealed.Label != "DO NOT SCALE" {
		t.Fatalf("case label = %q", revealed.Label)
	}
}

func TestServerReportsInvalidInputAsError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))
	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "decision_evaluate",
		Arguments: map[string]any{"choice": "MAYBE", "preferred": "ACT"},
	})
	if err == nil && !res.IsError {
		t.Fatal("expected an error for an unknown choice")
	}
}

func TestNewServerRequiresTables(t *testing.T) {
	t.Parallel()

	if _, err := newServer(Tables{}); err == nil {
		t.Fatal("expected error for missing tables")
	}
}

func TestServeWithTransportStopsOnCancel(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	done := make(chan error, 1)
	go func() {
		done <- server.serveWithTransport(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()
	if _, err := session.ListTools(context.Background(), nil); err != nil {
		t.Fatalf("ListTools: %v", err)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serveWithTransport() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for server to stop")
	}
}

func TestServeWithTransportRequiresServer(t *testing.T) {
	t.Parallel()

	var server *Server
	if err := server.serveWithTransport(context.Background(), &mcp.StdioTransport{}); err == nil {
		t.Fatal("expected error for nil server")
	}
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), Config{Transport: "carrier-pigeon"})
	if err == nil || !strings.Contains(err.Error(), "not supported") {
		t.Fatalf("Run() error = %v, want unsupported transport", err)
	}
}

func TestRunHTTPStopsOnCancel(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	addr := listener.Addr().String()
	_ = listener.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, Config{Transport: TransportHTTP, HTTPAddr: addr})
	}()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for HTTP transport to stop")
	}
}

func TestHTTPHandlerServesStreamableClients(t *testing.T) {
	t.Parallel()

	handler, err := NewHTTPHandler()
	if err != nil {
		t.Fatalf("NewHTTPHandler() error = %v", err)
	}
	httpServer := httptest.NewServer(handler)
	defer httpServer.Close()

	ctx := context.Background()
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: httpServer.URL}, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	defer session.Close()

	list := callTool[domain.CaseListResult](t, ctx, session, "decision_cases_list", map[string]any{})
	if len(list.Cases) != 8 {
		t.Fatalf("cases = %d, want 8", len(list.Cases))
	}
}
