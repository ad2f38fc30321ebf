// Package todo defines the Todo entity, its lifecycle states, and the
// composite identifier used to address it.
package todo

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain"
)

// Todo is a unit of asynchronous work submitted by a user. UserID, ID, Type
// and SourceFile never change after New; State and ResultFile change only
// through a transition.
type Todo struct {
	UserID     string
	ID         string
	Type       string
	State      State
	SourceFile string
	ResultFile *string
}

// New creates a Todo in StateNotStarted with a freshly generated UUID v4 ID
// and no result file.
func New(userID, todoType, sourceFile string) Todo {
	return Todo{
		UserID:     userID,
		ID:         uuid.NewString(),
		Type:       todoType,
		State:      StateNotStarted,
		SourceFile: sourceFile,
	}
}

// Key returns the composite storage key of the todo.
func (t *Todo) Key() Key {
	return Key{UserID: t.UserID, TodoID: t.ID}
}

// GlobalID returns the externally visible identifier "{user_id}_{todo_id}".
func (t *Todo) GlobalID() string {
	return t.Key().String()
}

// CanTransitionTo reports whether moving to target is allowed. Only a
// transition to the current state is rejected; any other pair is permitted,
// including leaving StateCompleted.
func (t *Todo) CanTransitionTo(target State) bool {
	return t.State != target
}

// Validate checks business rules for the Todo entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Todo) Validate() error {
	fields := make(map[string]string)

	switch {
	case strings.TrimSpace(t.UserID) == "":
		fields["user_id"] = domain.MsgRequired
	case strings.Contains(t.UserID, Separator):
		fields["user_id"] = fmt.Sprintf("must not contain %q", Separator)
	}
	if strings.TrimSpace(t.Type) == "" {
		fields["todo_type"] = domain.MsgRequired
	}
	if strings.TrimSpace(t.SourceFile) == "" {
		fields["source_file"] = domain.MsgRequired
	}
	if !t.State.IsValid() {
		fields["state"] = fmt.Sprintf("invalid: %q", t.State)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
