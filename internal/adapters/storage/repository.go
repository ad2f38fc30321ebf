// Package storage implements ports.TodoRepository on top of a pluggable
// key-value Backend. Backend implementations live in the dynamodb, sqlite and
// memory subpackages; the record subpackage holds the attribute codec they
// share.
package storage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage/record"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/ports"
)

// Operation names used for spans, metrics and errors.
const (
	OpPut = "put"
	OpGet = "get"
)

// Backend is a key-value store holding one record.Item per todo.Key.
type Backend interface {
	// Name identifies the backend in logs and metrics (e.g. "dynamodb").
	Name() string

	// Save writes item, replacing any record with the same key.
	Save(ctx context.Context, item record.Item) error

	// Find returns the record stored under key. It returns an error wrapping
	// record.ErrNotFound when none exists and record.ErrMalformed when the
	// stored value cannot be expressed as an Item.
	Find(ctx context.Context, key todo.Key) (record.Item, error)
}

// Executor runs a backend call under the store's retry and circuit breaker
// policy. *resilience.Executor satisfies it.
type Executor interface {
	Do(ctx context.Context, op string, fn func(context.Context) error) error
}

// Repository persists todos through a Backend.
type Repository struct {
	backend Backend
	exec    Executor
	logger  *slog.Logger
}

// Compile-time interface check.
var _ ports.TodoRepository = (*Repository)(nil)

// NewRepository creates a Repository. If exec is nil, backend calls are made
// directly. If logger is nil, logs are discarded.
func NewRepository(backend Backend, exec Executor, logger *slog.Logger) *Repository {
	if exec == nil {
		exec = direct{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Repository{
		backend: backend,
		exec:    exec,
		logger:  logger,
	}
}

// Put writes the full record for t. Any failure is returned as *Error.
func (r *Repository) Put(ctx context.Context, t *todo.Todo) error {
	item := record.FromTodo(t)

	err := r.exec.Do(ctx, OpPut, func(ctx context.Context) error {
		return r.backend.Save(ctx, item)
	})
	if err != nil {
		logging.ForTodo(ctx, r.logger, t.GlobalID()).ErrorContext(ctx, "failed to write todo record",
			slog.String("operation", "Put"),
			slog.String("storage_backend", r.backend.Name()),
			slog.Any("error", err),
		)
		return &Error{Op: OpPut, Backend: r.backend.Name(), Err: err}
	}
	return nil
}

// Get looks up a todo by global identifier. Every failure collapses to
// (nil, false); the cause is logged at a level matching its severity.
func (r *Repository) Get(ctx context.Context, globalID string) (*todo.Todo, bool) {
	t, err := r.find(ctx, globalID)
	if err == nil {
		return t, true
	}

	attrs := []any{
		slog.String("operation", "Get"),
		slog.String("storage_backend", r.backend.Name()),
		slog.Any("error", err),
	}

	logger := logging.ForTodo(ctx, r.logger, globalID)
	switch {
	case errors.Is(err, todo.ErrInvalidGlobalID):
		logger.DebugContext(ctx, "unparseable todo global id", attrs...)
	case errors.Is(err, record.ErrNotFound):
		logger.DebugContext(ctx, "todo record not found", attrs...)
	case errors.Is(err, record.ErrMalformed):
		logger.WarnContext(ctx, "malformed todo record", attrs...)
	default:
		logger.ErrorContext(ctx, "failed to read todo record", attrs...)
	}
	return nil, false
}

func (r *Repository) find(ctx context.Context, globalID string) (*todo.Todo, error) {
	key, err := todo.ParseGlobalID(globalID)
	if err != nil {
		return nil, err
	}

	var item record.Item
	err = r.exec.Do(ctx, OpGet, func(ctx context.Context) error {
		var findErr error
		item, findErr = r.backend.Find(ctx, key)
		return findErr
	})
	if err != nil {
		return nil, err
	}

	return record.ToTodo(item)
}

// direct runs fn once with no policy applied.
type direct struct{}

func (direct) Do(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}
