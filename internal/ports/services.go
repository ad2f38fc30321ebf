package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
)

// TodoService defines the service port for todo lifecycle operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// Get returns the todo with the given global identifier.
	// Returns domain.ErrNotFound if no readable todo exists.
	Get(ctx context.Context, globalID string) (*todo.Todo, error)

	// Submit creates a todo in the NotStarted state and returns its global
	// identifier.
	// Returns domain.ErrValidation if the input fails validation and
	// domain.ErrCreationFailure if the write fails.
	Submit(ctx context.Context, userID, todoType, sourceFile string) (string, error)

	// Transition moves a todo to target and sets its result file to
	// resultFile, clearing it when resultFile is nil.
	// Returns domain.ErrNotFound, a *domain.TransitionError when the todo is
	// already in target, or domain.ErrUpdateFailure if the write fails.
	Transition(ctx context.Context, globalID string, target todo.State, resultFile *string) (string, error)

	// Start moves a todo to InProgress.
	Start(ctx context.Context, globalID string) (string, error)

	// Pause moves a todo to Paused.
	Pause(ctx context.Context, globalID string) (string, error)

	// Fail moves a todo to Failed.
	Fail(ctx context.Context, globalID string) (string, error)

	// Complete moves a todo to Completed and records its result file.
	Complete(ctx context.Context, globalID, resultFile string) (string, error)
}
