// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, dto.NewProblem(req, http.StatusNotFound,
			dto.CodeNotFound, "no route matches the request"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, dto.NewProblem(req, http.StatusMethodNotAllowed,
			dto.CodeBadRequest, "method not allowed for this route"))
	})

	// Health endpoints.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Todo lifecycle.
	r.Post("/todo", todoHandler.SubmitTodo)
	r.Route("/todo/{todoGlobalID}", func(r chi.Router) {
		r.Get("/", todoHandler.GetTodo)
		r.Put("/start", todoHandler.StartTodo)
		r.Put("/pause", todoHandler.PauseTodo)
		r.Put("/fail", todoHandler.FailTodo)
		r.Put("/complete", todoHandler.CompleteTodo)
	})

	return r
}
