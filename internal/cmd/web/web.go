// Package web parses web command configuration and runs the site server.
package web

import (
	"context"
	"flag"
	"fmt"

	platformcmd "github.com/decisionroom/decisionroom/internal/platform/cmd"
	mcpservice "github.com/decisionroom/decisionroom/internal/services/mcp/service"
	"github.com/decisionroom/decisionroom/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr         string `env:"WEB_HTTP_ADDR"         envDefault:"localhost:8080"`
	ContactEmail     string `env:"CONTACT_EMAIL"`
	MCPEnabled       bool   `env:"WEB_MCP_ENABLED"       envDefault:"false"`
	SimulatorScoring bool   `env:"WEB_SIMULATOR_SCORING" envDefault:"true"`
}

// ParseConfig loads environment defaults and then applies flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.LoadConfig(fs, args, &cfg, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContactEmail, "contact-email", cfg.ContactEmail, "Address used by the Contact link")
	fs.BoolVar(&cfg.MCPEnabled, "mcp", cfg.MCPEnabled, "Serve MCP tools at /mcp")
	fs.BoolVar(&cfg.SimulatorScoring, "simulator-scoring", cfg.SimulatorScoring, "Show decision quality scores in the simulator")
}

// Run starts the web server and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		serverCfg, err := serverConfig(cfg)
		if err != nil {
			return err
		}
		server, err := web.NewServer(serverCfg)
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config) (web.Config, error) {
	out := web.Config{
		HTTPAddr:         cfg.HTTPAddr,
		ContactEmail:     cfg.ContactEmail,
		SimulatorScoring: cfg.SimulatorScoring,
	}
	if cfg.MCPEnabled {
		handler, err := mcpservice.NewHTTPHandler()
		if err != nil {
			return web.Config{}, fmt.Errorf("init mcp handler: %w", err)
		}
		out.MCPHandler = handler
	}
	return out, nil
}
