package service

import (
	"fmt"

	"github.com/decisionroom/decisionroom/internal/content"
	"github.com/decisionroom/decisionroom/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies the MCP server implementation.
	serverName = "decisionroom-mcp"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
	// defaultHTTPAddr keeps the HTTP transport bound to localhost.
	defaultHTTPAddr = "localhost:8081"
	// HTTPPath is where the HTTP transport serves MCP.
	HTTPPath = "/mcp"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	Transport TransportKind
	// HTTPAddr is the listen address for the HTTP transport.
	HTTPAddr string
}

// Tables carries the read-only content the tools serve.
type Tables struct {
	Cases     domain.CaseSource
	Scenarios domain.ScenarioSource
}

// DefaultTables returns the embedded content tables.
func DefaultTables() Tables {
	return Tables{Cases: content.Cases(), Scenarios: content.Scenarios()}
}

// Server hosts the MCP tool set.
type Server struct {
	mcpServer *mcp.Server
}

// NewServer builds an MCP server over the embedded content tables.
func NewServer() (*Server, error) {
	return newServer(DefaultTables())
}

func newServer(tables Tables) (*Server, error) {
	if tables.Cases == nil || tables.Scenarios == nil {
		return nil, fmt.Errorf("content tables are required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	if err := registerDecisionTools(mcpServerRegistrationAdapter{server: mcpServer}, tables); err != nil {
		return nil, fmt.Errorf("register decision tools: %w", err)
	}
	return &Server{mcpServer: mcpServer}, nil
}

// MCPServer exposes the underlying SDK server.
func (s *Server) MCPServer() *mcp.Server {
	if s == nil {
		return nil
	}
	return s.mcpServer
}
