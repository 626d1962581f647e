// Package cmd holds the startup plumbing shared by every command.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/decisionroom/decisionroom/internal/platform/config"
	"github.com/decisionroom/decisionroom/internal/platform/otel"
)

// Service identifiers used as telemetry service names and log prefixes.
const (
	ServiceMCP = "decisionroom-mcp"
	ServiceWeb = "decisionroom-web"
)

const telemetryFlushTimeout = 5 * time.Second

// FlagBinder registers command flags on fs. Flags should use the fields of
// cfg as their defaults, since env values are already loaded.
type FlagBinder[T any] func(fs *flag.FlagSet, cfg *T)

// LoadConfig fills cfg from DECISION_ROOM_ environment variables, binds the
// command flags over those values and parses args. Flags win over env.
func LoadConfig[T any](fs *flag.FlagSet, args []string, cfg *T, bind FlagBinder[T]) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag set is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry installs the tracer provider for service, calls run and
// flushes pending spans once run returns.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("%s telemetry flush: %v", service, err)
		}
	}()
	return run(ctx)
}
