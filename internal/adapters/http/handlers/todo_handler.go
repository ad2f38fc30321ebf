// Package handlers implements the inbound HTTP handlers for the todo
// lifecycle API and the health endpoints.
package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/ports"
)

// TodoHandler handles HTTP requests for todo lifecycle operations.
type TodoHandler struct {
	svc ports.TodoService
}

// NewTodoHandler creates a new TodoHandler backed by the given service.
func NewTodoHandler(svc ports.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

// GetTodo handles GET /todo/{todoGlobalID}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	r, id := globalID(r)
	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.ToTodoResponse(t))
}

// SubmitTodo handles POST /todo.
func (h *TodoHandler) SubmitTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitTodoRequest
	if !bind(w, r, &req) {
		return
	}

	id, err := h.svc.Submit(r.Context(), req.UserID, req.TodoType, req.SourceFile)
	writeIdentifier(w, r, id, err)
}

// StartTodo handles PUT /todo/{todoGlobalID}/start.
func (h *TodoHandler) StartTodo(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Start)
}

// PauseTodo handles PUT /todo/{todoGlobalID}/pause.
func (h *TodoHandler) PauseTodo(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Pause)
}

// FailTodo handles PUT /todo/{todoGlobalID}/fail.
func (h *TodoHandler) FailTodo(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Fail)
}

// CompleteTodo handles PUT /todo/{todoGlobalID}/complete. The body must carry
// a non-empty result_file.
func (h *TodoHandler) CompleteTodo(w http.ResponseWriter, r *http.Request) {
	r, id := globalID(r)
	var req dto.CompleteTodoRequest
	if !bind(w, r, &req) {
		return
	}

	id, err := h.svc.Complete(r.Context(), id, req.ResultFile)
	writeIdentifier(w, r, id, err)
}

func (h *TodoHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, globalID string) (string, error),
) {
	r, id := globalID(r)
	id, err := op(r.Context(), id)
	writeIdentifier(w, r, id, err)
}
