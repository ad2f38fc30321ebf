// Command server runs the todo lifecycle HTTP API. APP_PROFILE selects the
// configuration profile under ./configs; SIGINT and SIGTERM drain in-flight
// requests before exiting.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/resilience"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

var errMissingProfile = errors.New("APP_PROFILE is required (local, dev, qa or prod)")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Getenv("APP_PROFILE"))
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "todo-lifecycle-service: %v\n", err)
		os.Exit(1)
	}
}

// run wires the service and blocks until ctx ends or the server fails. The
// HTTP drain finishes before the deferred storage close and telemetry flush.
func run(ctx context.Context, profile string) error {
	if profile == "" {
		return errMissingProfile
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.String("profile", profile), slog.Any("config", cfg))

	otel, err := initTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(logger, otel)

	injector := newContainer(ctx, cfg, logger, otel.Metrics)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}

	backend := do.MustInvoke[storage.Backend](injector)
	defer closeBackend(logger, backend)
	logger.Info("storage backend ready", slog.String("storage_backend", backend.Name()))

	registerHealthChecks(injector, backend)

	return serve(ctx, logger, server)
}

// serve runs server until it fails or ctx ends, then drains it.
func serve(ctx context.Context, logger *slog.Logger, server *adapthttp.Server) error {
	serverErr := make(chan error, 1)
	go func() { serverErr <- server.Start() }()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	err := <-serverErr
	logger.Info("shutdown complete")
	return err
}

// registerHealthChecks runs after wiring so every checker already exists.
func registerHealthChecks(injector do.Injector, backend storage.Backend) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*resilience.Executor](injector))
	if checker, ok := backend.(ports.HealthChecker); ok {
		registry.Register(checker)
	}
}

func initTelemetry(ctx context.Context, cfg config.TelemetryConfig) (*telemetry.Providers, error) {
	if !cfg.Enabled {
		return telemetry.Disabled(), nil
	}
	return telemetry.Setup(ctx, telemetry.Options{
		ServiceName: cfg.ServiceName,
		Exporter:    cfg.Exporter,
		Endpoint:    cfg.Endpoint,
	})
}

func flushTelemetry(logger *slog.Logger, p *telemetry.Providers) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

// closeBackend releases backends holding resources, such as the SQLite pool.
func closeBackend(logger *slog.Logger, backend storage.Backend) {
	c, ok := backend.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		logger.Error("storage close error",
			slog.String("storage_backend", backend.Name()),
			slog.Any("error", err),
		)
	}
}
