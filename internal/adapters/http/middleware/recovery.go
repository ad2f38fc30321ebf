package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/dto"
)

// Recovery returns middleware that recovers from panics in downstream handlers.
// When a panic occurs the middleware logs the error with the full stack trace
// and returns an RFC 9457 500 response. The panic value is never exposed in
// the response. If the response headers have already been written, only the
// log entry is emitted. Panics re-raised by Timeout keep their original
// stack.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newStatusWriter(w)

			defer func() {
				if v := recover(); v != nil {
					value, stack := v, debug.Stack()
					if p, ok := v.(*handlerPanic); ok {
						value, stack = p.value, p.stack
					}
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.String("panic", fmt.Sprint(value)),
						slog.String("stack", string(stack)),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)

					if !rw.wroteHeader {
						dto.WriteProblem(rw, r, dto.NewProblem(r, http.StatusInternalServerError,
							dto.CodeInternal, "an unexpected error occurred"))
					}
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
