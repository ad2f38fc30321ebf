package main

import (
	"context"
	"fmt"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage"
	ddbstore "github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage/dynamodb"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage/record"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/app"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/resilience"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/ports"
)

// newContainer registers every component lazily; nothing is built until the
// server is invoked.
func newContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *telemetry.Metrics) *do.RootScope {
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)

	// Storage: backend, then the retrying executor, then the repository.
	do.Provide(injector, func(do.Injector) (storage.Backend, error) {
		return openBackend(ctx, &cfg.Storage)
	})
	do.Provide(injector, func(i do.Injector) (*resilience.Executor, error) {
		backend, err := do.Invoke[storage.Backend](i)
		if err != nil {
			return nil, err
		}
		return resilience.New(&cfg.Storage, backend.Name(), metrics, logger,
			resilience.WithPermanentErrors(record.ErrNotFound, record.ErrMalformed),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (ports.TodoRepository, error) {
		return storage.NewRepository(
			do.MustInvoke[storage.Backend](i),
			do.MustInvoke[*resilience.Executor](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		return app.NewTodoService(do.MustInvoke[ports.TodoRepository](i), logger), nil
	})
	do.Provide(injector, func(do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// HTTP.
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		return adapthttp.NewRouter(
			handlers.NewTodoHandler(do.MustInvoke[ports.TodoService](i)),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		), nil
	})
	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), logger), nil
	})

	return injector
}

// openBackend builds the storage backend selected by cfg.Driver.
func openBackend(ctx context.Context, cfg *config.StorageConfig) (storage.Backend, error) {
	switch cfg.Driver {
	case config.DriverDynamoDB:
		client, err := ddbstore.NewClient(ctx, &cfg.DynamoDB)
		if err != nil {
			return nil, fmt.Errorf("dynamodb client: %w", err)
		}
		return ddbstore.New(client, cfg.TableName), nil
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLite.Path, cfg.TableName)
		if err != nil {
			return nil, fmt.Errorf("sqlite store: %w", err)
		}
		return store, nil
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
