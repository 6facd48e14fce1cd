// Package main is the entry point for WizardFight.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/wizardfight/internal/game"
	"github.com/samdwyer/wizardfight/internal/logger"
	"github.com/samdwyer/wizardfight/internal/telemetry"
)

func main() {
	// Local development keeps the Honeycomb key in .env
	envErr := godotenv.Load()

	cfg := game.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// The terminal owns stdout, so logs go to a file.
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Output: logFile})
	log := logger.Component("main")
	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx := context.Background()
	tracer, shutdown := setupTracing(ctx, cfg)
	defer shutdown()

	g, err := game.New(cfg, tracer)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize game")
	}
	if err := g.Run(ctx); err != nil {
		log.WithError(err).Fatal("Game error")
	}
}

// setupTracing returns the game tracer and its shutdown hook. Without
// telemetry, or when the exporter cannot start, the game still runs on a
// no-op tracer.
func setupTracing(ctx context.Context, cfg game.Config) (trace.Tracer, func()) {
	log := logger.Component("telemetry")
	if !cfg.Telemetry {
		return telemetry.NoopTracer(), func() {}
	}

	setupOTelEnv()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.WithError(err).Warn("Telemetry setup failed, running without traces")
		return telemetry.NoopTracer(), func() {}
	}
	return telemetry.Tracer("game"), func() {
		if err := shutdown(ctx); err != nil {
			log.WithError(err).Error("Shutting down telemetry")
		}
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb using our own
// variables, unless OTEL_* values are already set.
func setupOTelEnv() {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	apiKey := os.Getenv("HONEYCOMB_WIZARDFIGHT_API_KEY")
	dataset := os.Getenv("HONEYCOMB_WIZARDFIGHT_DATASET")
	if dataset == "" {
		dataset = telemetry.ServiceName
	}
	if apiKey != "" && os.Getenv("OTEL_EXPORTER_OTLP_HEADERS") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	}
}
