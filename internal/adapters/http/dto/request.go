package dto

import (
	"strings"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain"
)

// SubmitTodoRequest represents the JSON body for submitting a new todo.
type SubmitTodoRequest struct {
	UserID     string `json:"user_id"`
	TodoType   string `json:"todo_type"`
	SourceFile string `json:"source_file"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *SubmitTodoRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.UserID) == "" {
		fields["user_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.TodoType) == "" {
		fields["todo_type"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.SourceFile) == "" {
		fields["source_file"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CompleteTodoRequest represents the JSON body for completing a todo.
type CompleteTodoRequest struct {
	ResultFile string `json:"result_file"`
}

// Validate checks that the result file is present.
func (r *CompleteTodoRequest) Validate() error {
	if strings.TrimSpace(r.ResultFile) == "" {
		return &domain.ValidationError{Fields: map[string]string{"result_file": domain.MsgRequired}}
	}
	return nil
}
