// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
)

// TodoResponse represents a single todo in HTTP responses. ResultFile is
// serialized as null when the todo has none.
type TodoResponse struct {
	UserUUID   string     `json:"user_uuid"`
	TodoUUID   string     `json:"todo_uuid"`
	TodoType   string     `json:"todo_type"`
	State      todo.State `json:"state"`
	SourceFile string     `json:"source_file"`
	ResultFile *string    `json:"result_file"`
}

// TodoIdentifierResponse is returned by every mutating endpoint.
type TodoIdentifierResponse struct {
	TodoGlobalID string `json:"todo_global_id"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		UserUUID:   t.UserID,
		TodoUUID:   t.ID,
		TodoType:   t.Type,
		State:      t.State,
		SourceFile: t.SourceFile,
		ResultFile: t.ResultFile,
	}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
