// Package console wires configuration and lifecycle for the console web
// service.
package console

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/seafortlabs/seafort/internal/console"
	"github.com/seafortlabs/seafort/internal/platform/config"
	"github.com/seafortlabs/seafort/internal/platform/otel"
)

const defaultHTTPAddr = "localhost:8080"

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags and environment into the service configuration.
// Backend credentials come from the environment only.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (console.Config, error) {
	cfg := console.Config{
		HTTPAddr: envOrDefault(lookup, "SEAFORT_CONSOLE_HTTP_ADDR", defaultHTTPAddr),
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	if err := fs.Parse(args); err != nil {
		return console.Config{}, err
	}

	if err := config.ParseEnvPrefixed(&cfg.Supabase); err != nil {
		return console.Config{}, err
	}
	return cfg, nil
}

// Run starts the console server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg console.Config) error {
	shutdown, err := otel.Setup(ctx, "console")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := console.NewServer(cfg)
	if err != nil {
		return fmt.Errorf("init console server: %w", err)
	}
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve console: %w", err)
	}
	return nil
}

func envOrDefault(lookup EnvLookup, key, fallback string) string {
	if lookup != nil {
		if value, ok := lookup(key); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}
