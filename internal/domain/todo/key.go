package todo

import (
	"errors"
	"fmt"
	"strings"
)

// Separator joins the user and todo parts of a global identifier.
const Separator = "_"

// ErrInvalidGlobalID is returned when a global identifier cannot be split
// into a non-empty user part and todo part.
var ErrInvalidGlobalID = errors.New("invalid todo global id")

// Key is the composite (partition, sort) key of a stored todo.
type Key struct {
	UserID string
	TodoID string
}

// String joins the key parts with Separator, producing the global identifier.
func (k Key) String() string {
	return k.UserID + Separator + k.TodoID
}

// ParseGlobalID splits a global identifier on its first Separator. User IDs
// may not contain the separator (see Todo.Validate), so the first occurrence
// is always the boundary. A todo part containing a further separator is
// rejected rather than guessed at.
func ParseGlobalID(globalID string) (Key, error) {
	userID, todoID, ok := strings.Cut(globalID, Separator)
	if !ok || userID == "" || todoID == "" || strings.Contains(todoID, Separator) {
		return Key{}, fmt.Errorf("%w: %q", ErrInvalidGlobalID, globalID)
	}
	return Key{UserID: userID, TodoID: todoID}, nil
}
