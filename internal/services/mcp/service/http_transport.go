package service

import (
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// HTTPHandler serves the MCP tool set over streamable HTTP. Every session
// shares one server; tools keep no per-session state.
func (s *Server) HTTPHandler() http.Handler {
	server := s.MCPServer()
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
}

// NewHTTPHandler builds a server over the embedded content and returns its
// streamable HTTP handler, for mounting inside another HTTP service.
func NewHTTPHandler() (http.Handler, error) {
	server, err := NewServer()
	if err != nil {
		return nil, err
	}
	return server.HTTPHandler(), nil
}
