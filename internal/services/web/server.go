package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/decisionroom/decisionroom/internal/platform/timeouts"
	"github.com/decisionroom/decisionroom/internal/services/web/composition"
	module "github.com/decisionroom/decisionroom/internal/services/web/module"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/httpx"
	"github.com/decisionroom/decisionroom/internal/services/web/platform/observability"
	"github.com/decisionroom/decisionroom/internal/services/web/routepath"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr     string
	ContactEmail string
	// SimulatorScoring shows the decision quality score after a choice.
	SimulatorScoring bool
	// MCPHandler, when set, is mounted at /mcp and accepts any method.
	MCPHandler http.Handler
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler with the request middleware chain.
func NewHandler(cfg Config) (http.Handler, error) {
	deps := module.DefaultDependencies(cfg.ContactEmail)
	deps.SimulatorScoring = cfg.SimulatorScoring

	app, err := composition.ComposeAppHandler(composition.ComposeInput{
		ModuleDependencies: deps,
	})
	if err != nil {
		return nil, fmt.Errorf("compose app handler: %w", err)
	}

	root := http.NewServeMux()
	root.Handle(routepath.Root, httpx.Chain(app, httpx.RequireReadMethods()))
	if cfg.MCPHandler != nil {
		root.Handle(routepath.MCP, cfg.MCPHandler)
	}

	return httpx.Chain(root,
		httpx.RequestID(),
		httpx.RecoverPanic(),
		observability.RequestLogger(nil),
		observability.Tracing(nil),
	), nil
}

// NewServer builds a configured web server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the listener immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close web server: %v", err)
	}
}
