// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService on top of a TodoRepository. It
// validates input, applies the transition rule, and classifies failures into
// domain errors. It never retries; the repository's storage policy does.
//
// Transition is a read-modify-write with no locking or conditional write.
// Two concurrent transitions of the same todo both succeed and the later
// write wins.
type TodoService struct {
	repo   ports.TodoRepository
	logger *slog.Logger
}

// NewTodoService creates a TodoService. If logger is nil, logs are discarded.
func NewTodoService(repo ports.TodoRepository, logger *slog.Logger) *TodoService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TodoService{
		repo:   repo,
		logger: logger,
	}
}

// Get returns the todo with the given global identifier.
func (s *TodoService) Get(ctx context.Context, globalID string) (*todo.Todo, error) {
	t, ok := s.repo.Get(ctx, globalID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, globalID)
	}
	return t, nil
}

// Submit creates a NotStarted todo and persists it.
func (s *TodoService) Submit(ctx context.Context, userID, todoType, sourceFile string) (string, error) {
	t := todo.New(userID, todoType, sourceFile)
	if err := t.Validate(); err != nil {
		return "", err
	}

	globalID := t.GlobalID()
	logger := logging.ForTodo(ctx, s.logger, globalID)
	logger.InfoContext(ctx, "submitting todo", slog.String("todo_type", todoType))

	if err := s.repo.Put(ctx, &t); err != nil {
		logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "Submit"),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("%w: %w", domain.ErrCreationFailure, err)
	}

	return globalID, nil
}

// Transition moves the todo to target and replaces its result file with
// resultFile. A nil resultFile clears any previously recorded result.
func (s *TodoService) Transition(ctx context.Context, globalID string, target todo.State, resultFile *string) (string, error) {
	if !target.IsValid() {
		return "", &domain.ValidationError{Fields: map[string]string{
			"state": fmt.Sprintf("invalid: %q", target),
		}}
	}

	t, ok := s.repo.Get(ctx, globalID)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNotFound, globalID)
	}

	if !t.CanTransitionTo(target) {
		return "", &domain.TransitionError{From: t.State.String(), To: target.String()}
	}

	from := t.State
	t.State = target
	t.ResultFile = resultFile

	logger := logging.ForTodo(ctx, s.logger, globalID)
	if err := s.repo.Put(ctx, t); err != nil {
		logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "Transition"),
			slog.String("from", from.String()),
			slog.String("to", target.String()),
			slog.Any("error", err),
		)
		return "", fmt.Errorf("%w: %w", domain.ErrUpdateFailure, err)
	}

	logger.InfoContext(ctx, "todo transitioned",
		slog.String("from", from.String()),
		slog.String("to", target.String()),
	)
	return t.GlobalID(), nil
}

// Start moves a todo to InProgress and clears its result file.
func (s *TodoService) Start(ctx context.Context, globalID string) (string, error) {
	return s.Transition(ctx, globalID, todo.StateInProgress, nil)
}

// Pause moves a todo to Paused and clears its result file.
func (s *TodoService) Pause(ctx context.Context, globalID string) (string, error) {
	return s.Transition(ctx, globalID, todo.StatePaused, nil)
}

// Fail moves a todo to Failed and clears its result file.
func (s *TodoService) Fail(ctx context.Context, globalID string) (string, error) {
	return s.Transition(ctx, globalID, todo.StateFailed, nil)
}

// Complete moves a todo to Completed and records resultFile.
func (s *TodoService) Complete(ctx context.Context, globalID, resultFile string) (string, error) {
	return s.Transition(ctx, globalID, todo.StateCompleted, &resultFile)
}
