// Package main is the entry point for WorldForge.
package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/worldforge/internal/cli"
	"github.com/samdwyer/worldforge/internal/telemetry"
)

// Populated via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	// Telemetry only activates when an OTLP endpoint is configured; the
	// tool works fine without it.
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
