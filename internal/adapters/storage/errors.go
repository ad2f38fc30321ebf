package storage

import (
	"fmt"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain"
)

// Error describes a failed storage operation. It matches domain.ErrStorage
// and its underlying cause via errors.Is.
type Error struct {
	Op      string
	Backend string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage %s on %s: %v", e.Op, e.Backend, e.Err)
}

// Unwrap returns both the storage sentinel and the cause.
func (e *Error) Unwrap() []error {
	return []error{domain.ErrStorage, e.Err}
}
