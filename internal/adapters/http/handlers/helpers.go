package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/logging"
)

// globalIDParam is the chi URL parameter holding a todo's global identifier.
const globalIDParam = "todoGlobalID"

// globalID extracts the todo global identifier from the chi URL params and
// attaches it to the request logger. Parsing is left to the service so
// malformed ids surface as not found.
func globalID(r *http.Request) (*http.Request, string) {
	id := chi.URLParam(r, globalIDParam)
	return r.WithContext(logging.WithGlobalID(r.Context(), id)), id
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encode response", slog.Any("error", err))
	}
}

// maxBodyBytes caps request bodies at 1 MiB.
const maxBodyBytes = 1 << 20

// decodeBody reports false after writing a 400 when the body is not JSON
// that fits in maxBodyBytes.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteError(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

type validatable interface {
	Validate() error
}

// bind decodes and validates dst, writing the problem response on failure.
func bind[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteError(w, r, err)
		return false
	}
	return true
}

// writeIdentifier writes the 200 response shared by every mutating endpoint,
// or the mapped error response when err is non-nil.
func writeIdentifier(w http.ResponseWriter, r *http.Request, id string, err error) {
	if err != nil {
		dto.WriteError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.TodoIdentifierResponse{TodoGlobalID: id})
}
