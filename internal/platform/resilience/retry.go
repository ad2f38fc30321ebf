package resilience

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/logging"
)

// jitterFraction spreads each delay uniformly over ±25%.
const jitterFraction = 0.25

// errNoAttempts guards a policy that would never call fn.
var errNoAttempts = errors.New("resilience: retry policy allows no attempts")

// retryPolicy is capped exponential backoff with jitter.
type retryPolicy struct {
	maxAttempts int
	initial     time.Duration
	max         time.Duration
	multiplier  float64
	// jitter returns a value in [0, 1).
	jitter func() float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts: cfg.MaxAttempts,
		initial:     cfg.InitialInterval,
		max:         cfg.MaxInterval,
		multiplier:  cfg.Multiplier,
		jitter:      rand.Float64,
	}
}

// delay returns the wait before retry n, where n = 1 is the first retry.
func (p retryPolicy) delay(n int) time.Duration {
	d := min(float64(p.initial)*math.Pow(p.multiplier, float64(n-1)), float64(p.max))
	d += d * jitterFraction * (2*p.jitter() - 1)
	return time.Duration(max(d, 0))
}

// runWithRetry calls fn until it succeeds, fails for good or the attempts
// run out, and returns the last error. A retry whose delay would outlast the
// context deadline is skipped.
func (e *Executor) runWithRetry(ctx context.Context, op string, fn func(context.Context) error) error {
	if e.retry.maxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts %d", errNoAttempts, e.retry.maxAttempts)
	}

	var err error
	for attempt := 1; ; attempt++ {
		if err = fn(ctx); !e.retryable(err) || attempt == e.retry.maxAttempts {
			return err
		}

		wait := e.retry.delay(attempt)
		if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) < wait {
			return err
		}

		logging.Or(ctx, e.logger).WarnContext(ctx, "retrying storage operation",
			slog.String("storage_backend", e.backend),
			slog.String("storage_operation", op),
			slog.Int("attempt", attempt+1),
			slog.Int("max_attempts", e.retry.maxAttempts),
			slog.Duration("backoff", wait),
			slog.Any("error", err),
		)
		trace.SpanFromContext(ctx).AddEvent("retry", trace.WithAttributes(
			attribute.Int("attempt", attempt+1),
			attribute.String("error", err.Error()),
		))

		if werr := sleep(ctx, wait); werr != nil {
			return werr
		}
	}
}

// retryable is false for success, permanent errors and context errors.
func (e *Executor) retryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		return !e.isPermanent(err)
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
