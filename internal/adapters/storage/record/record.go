// Package record translates between the Todo entity and the flat attribute
// map that every storage backend persists. Backends convert an Item into
// their native representation; nothing outside this package knows the
// attribute names.
package record

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
)

// Attribute names of a stored todo record.
const (
	AttrPartitionKey = "pK"
	AttrSortKey      = "sK"
	AttrTodoType     = "todo_type"
	AttrState        = "state"
	AttrSourceFile   = "source_file"
	AttrResultFile   = "result_file"
)

var (
	// ErrNotFound is returned by a backend when no record exists for a key.
	ErrNotFound = errors.New("record not found")

	// ErrMalformed is returned when a stored record cannot be decoded into a
	// Todo: a required attribute is missing, has the wrong type, or holds an
	// unknown state.
	ErrMalformed = errors.New("malformed record")
)

// required lists the attributes ToTodo refuses to default.
var required = []string{AttrPartitionKey, AttrSortKey, AttrTodoType, AttrState, AttrSourceFile}

// Item is the storage-neutral form of a todo: attribute name to string value.
// AttrResultFile is omitted when the todo has no result file.
type Item map[string]string

// FromTodo encodes t as an Item.
func FromTodo(t *todo.Todo) Item {
	item := Item{
		AttrPartitionKey: t.UserID,
		AttrSortKey:      t.ID,
		AttrTodoType:     t.Type,
		AttrState:        t.State.String(),
		AttrSourceFile:   t.SourceFile,
	}
	if t.ResultFile != nil {
		item[AttrResultFile] = *t.ResultFile
	}
	return item
}

// ToTodo decodes an Item. A missing required attribute or an unknown state
// yields an error wrapping ErrMalformed.
func ToTodo(item Item) (*todo.Todo, error) {
	for _, name := range required {
		if _, ok := item[name]; !ok {
			return nil, fmt.Errorf("%w: missing attribute %q", ErrMalformed, name)
		}
	}

	state, err := todo.ParseState(item[AttrState])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	t := &todo.Todo{
		UserID:     item[AttrPartitionKey],
		ID:         item[AttrSortKey],
		Type:       item[AttrTodoType],
		State:      state,
		SourceFile: item[AttrSourceFile],
	}
	if rf, ok := item[AttrResultFile]; ok {
		t.ResultFile = &rf
	}
	return t, nil
}
