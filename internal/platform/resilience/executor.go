// Package resilience guards storage calls. Each Executor.Do call runs
//
//	circuit breaker → client span → retry loop → fn
//
// and records the outcome on the todo.storage.operation.* metrics.
//
//	exec := resilience.New(&cfg.Storage, "dynamodb", metrics, logger,
//	    resilience.WithPermanentErrors(record.ErrNotFound, record.ErrMalformed))
//	err := exec.Do(ctx, "put", func(ctx context.Context) error {
//	    return backend.Put(ctx, rec)
//	})
package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/telemetry"
)

// Result labels recorded on the storage operation metrics.
const (
	ResultSuccess     = "success"
	ResultError       = "error"
	ResultPermanent   = "permanent"
	ResultCircuitOpen = "circuit_open"
)

const tracerName = "github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/resilience"

var (
	// ErrCircuitOpen is reported by HealthCheck while the breaker rejects calls.
	ErrCircuitOpen = errors.New("circuit breaker open")
	// ErrDegraded is reported by HealthCheck while the breaker is probing.
	ErrDegraded = errors.New("circuit breaker half-open")
)

// Option configures an Executor.
type Option func(*Executor)

// WithPermanentErrors registers errors that describe the data rather than
// the health of the store. A matching error (errors.Is) is returned at once
// and counts as a success for the breaker.
func WithPermanentErrors(errs ...error) Option {
	return func(e *Executor) {
		e.permanent = append(e.permanent, errs...)
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Executor) {
		e.tracer = tp.Tracer(tracerName)
	}
}

// Executor runs storage operations under one breaker and retry policy. It is
// safe for concurrent use.
type Executor struct {
	backend   string
	breaker   *gobreaker.CircuitBreaker[struct{}]
	retry     retryPolicy
	permanent []error
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	tracer    trace.Tracer
}

// New returns an Executor for the named backend, which labels spans, metrics
// and logs. A nil metrics skips recording and a nil logger discards.
func New(cfg *config.StorageConfig, backend string, metrics *telemetry.Metrics, logger *slog.Logger, opts ...Option) *Executor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Executor{
		backend: backend,
		retry:   newRetryPolicy(cfg.Retry),
		metrics: metrics,
		logger:  logger,
		tracer:  otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(e)
	}

	cb := cfg.CircuitBreaker
	e.breaker = gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        backend,
		MaxRequests: clampUint32(cb.HalfOpenLimit),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			level := slog.LevelWarn
			if to == gobreaker.StateClosed {
				level = slog.LevelInfo
			}
			logger.Log(context.Background(), level, "circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			return err == nil || e.isPermanent(err) || errors.Is(err, context.Canceled)
		},
	})

	return e
}

// Do runs fn through the breaker, a client span and the retry loop. op
// ("get", "put") names the span and labels the metrics.
//
// While the breaker is open fn is not called and the error matches
// gobreaker.ErrOpenState or gobreaker.ErrTooManyRequests.
func (e *Executor) Do(ctx context.Context, op string, fn func(context.Context) error) error {
	start := time.Now()

	_, err := e.breaker.Execute(func() (struct{}, error) {
		ctx, span := e.tracer.Start(ctx, e.backend+"."+op,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				telemetry.AttrStorageBackend.String(e.backend),
				telemetry.AttrStorageOperation.String(op),
			),
		)
		defer span.End()

		err := e.runWithRetry(ctx, op, fn)
		e.annotate(span, err)
		return struct{}{}, err
	})

	e.record(ctx, op, time.Since(start), err)
	return err
}

// Name identifies the executor in readiness reports.
func (e *Executor) Name() string {
	return "storage." + e.backend
}

// HealthCheck reports the breaker state without touching the store: nil when
// closed, ErrDegraded when half-open and ErrCircuitOpen when open.
func (e *Executor) HealthCheck(context.Context) error {
	switch state := e.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: %w", e.backend, ErrDegraded)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: %w", e.backend, ErrCircuitOpen)
	default:
		return fmt.Errorf("%s: unknown breaker state %v", e.backend, state)
	}
}

func (e *Executor) isPermanent(err error) bool {
	return slices.ContainsFunc(e.permanent, func(target error) bool {
		return errors.Is(err, target)
	})
}

// annotate marks the span failed unless err is nil or an expected outcome.
func (e *Executor) annotate(span trace.Span, err error) {
	switch {
	case err == nil:
	case e.isPermanent(err):
		span.SetAttributes(attribute.String("storage.outcome", err.Error()))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// record runs outside the breaker so rejected calls are counted too.
func (e *Executor) record(ctx context.Context, op string, elapsed time.Duration, err error) {
	if e.metrics == nil {
		return
	}

	attrs := metric.WithAttributes(
		telemetry.AttrStorageBackend.String(e.backend),
		telemetry.AttrStorageOperation.String(op),
		telemetry.AttrResult.String(e.result(err)),
	)
	e.metrics.StorageOperationDuration.Record(ctx, elapsed.Seconds(), attrs)
	e.metrics.StorageOperationTotal.Add(ctx, 1, attrs)
}

func (e *Executor) result(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return ResultCircuitOpen
	case e.isPermanent(err):
		return ResultPermanent
	default:
		return ResultError
	}
}

func clampUint32(v int) uint32 {
	return uint32(min(max(v, 0), math.MaxUint32))
}
