package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/vovakirdan/tui-chase/internal/config"
	"github.com/vovakirdan/tui-chase/internal/core"
	"github.com/vovakirdan/tui-chase/internal/games/chase"
	"github.com/vovakirdan/tui-chase/internal/telemetry"
)

// logLevel is the minimum level of loggers built by newLogger.
var logLevel = log.InfoLevel

func setLogLevel(name string) error {
	level, err := log.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	logLevel = level
	return nil
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "chase",
		Level:           logLevel,
	})
}

// noteEnvFile reports a .env load failure. Running without one is normal.
func noteEnvFile(logger *log.Logger, err error) {
	if err != nil {
		logger.Debug(".env file not loaded", "error", err)
	}
}

// fileLogger logs to path, or discards everything when path is empty.
// The alt screen owns the terminal while playing, so stderr is not an option.
func fileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return newLogger(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return newLogger(f), func() { f.Close() }, nil
}

// loadConfig loads the game config and installs it for new chase games.
func loadConfig(logger *log.Logger) (config.ChaseConfig, error) {
	cfg, source, err := config.LoadChaseWithSource(flagConfig)
	if err != nil {
		return config.ChaseConfig{}, err
	}
	logger.Info("config loaded", "source", source)
	chase.SetConfig(cfg)
	return cfg, nil
}

// tickRate returns the --fps override or the configured rate.
func tickRate(cfg config.ChaseConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	if cfg.TickRate > 0 {
		return cfg.TickRate
	}
	return core.DefaultConfig().TickRate
}

// startTelemetry sets up tracing when an OTLP endpoint is configured.
// Failures are logged and the game runs untraced.
func startTelemetry(ctx context.Context, logger *log.Logger) (trace.Tracer, func()) {
	if !telemetry.Enabled() {
		return telemetry.NoopTracer(), func() {}
	}

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Warn("telemetry setup failed, running without tracing", "error", err)
		return telemetry.NoopTracer(), func() {}
	}

	return telemetry.Tracer("driver"), func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Error("telemetry shutdown", "error", err)
		}
	}
}
