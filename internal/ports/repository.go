package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
)

// TodoRepository persists todos keyed by their composite identifier.
// Implemented by the storage adapter; called by the application layer.
type TodoRepository interface {
	// Put writes the full record for t, replacing any existing record with
	// the same key. Errors match domain.ErrStorage.
	Put(ctx context.Context, t *todo.Todo) error

	// Get looks up a todo by its global identifier. It returns (nil, false)
	// when the identifier cannot be parsed, the record is absent, the store
	// fails, or the stored record cannot be decoded. Callers cannot tell
	// these cases apart; the repository logs the distinction.
	Get(ctx context.Context, globalID string) (*todo.Todo, bool)
}
