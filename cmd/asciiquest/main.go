// Package main is the entry point for Ascii Quest.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/asciiquest/internal/game"
	"github.com/samdwyer/asciiquest/internal/gamedata"
	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/telemetry"
	"github.com/samdwyer/asciiquest/internal/ui"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}
	setupOTelEnv()

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The terminal belongs to tcell, so diagnostics go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer logFile.Close()
	logger.Init(cfg.LogLevel, cfg.LogFormat, logFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		logger.Log.WithError(err).Warn("telemetry setup failed, running without traces")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Log.WithError(err).Error("telemetry shutdown")
			}
		}()
	}

	if err := run(ctx, cfg); err != nil {
		logger.Log.WithError(err).Error("game aborted")
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg game.Config) error {
	catalog, err := gamedata.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load game data: %w", err)
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()

	renderer := ui.NewRenderer(screen)
	g, err := game.New(ctx, cfg, catalog, renderer, ui.NewInput(screen), ui.NewMenus(screen, renderer))
	if err != nil {
		return err
	}
	return g.Run(ctx)
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set
// and the standard OTEL_* variables are not.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		dataset := os.Getenv("HONEYCOMB_DATASET")
		if dataset == "" {
			dataset = "asciiquest"
		}
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
