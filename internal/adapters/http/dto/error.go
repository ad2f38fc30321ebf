package dto

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/logging"
)

// Problem codes carried in the "code" member of every error response.
const (
	CodeBadRequest      = "BadTodoRequest"
	CodeNotFound        = "TodoNotFound"
	CodeCreationFailure = "TodoCreationFailure"
	CodeUpdateFailure   = "TodoUpdateFailure"
	CodeInternal        = "InternalError"
	CodeTimeout         = "Timeout"
)

// ProblemContentType is the media type of every error body.
const ProblemContentType = "application/problem+json"

// Problem is an RFC 9457 problem document. Code is an extension member with
// a stable machine-readable label; Errors lists per-field validation failures.
type Problem struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Code     string       `json:"code"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
}

// FieldError points at one invalid member of the request body.
type FieldError struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewProblem builds a Problem that does not come from a domain error, such as
// a panic or a handler timeout.
func NewProblem(r *http.Request, status int, code, detail string) Problem {
	return Problem{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

// mapping ties a domain sentinel to its response. Order matters: the first
// sentinel err wraps wins.
type mapping struct {
	target error
	status int
	code   string
	detail string
}

var mappings = []mapping{
	{domain.ErrValidation, http.StatusBadRequest, CodeBadRequest, "the request failed validation"},
	{domain.ErrInvalidTransition, http.StatusBadRequest, CodeBadRequest, "the requested state transition is not allowed"},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound, "no todo exists with the given id"},
	{domain.ErrCreationFailure, http.StatusFailedDependency, CodeCreationFailure, "the todo could not be stored"},
	{domain.ErrUpdateFailure, http.StatusFailedDependency, CodeUpdateFailure, "the todo update could not be stored"},
}

// ProblemFor translates err into a Problem. Details are fixed sentences, so
// wrapped causes such as storage failures never reach the client.
func ProblemFor(r *http.Request, err error) Problem {
	var terr *domain.TransitionError
	if errors.As(err, &terr) {
		return NewProblem(r, http.StatusBadRequest, CodeBadRequest,
			fmt.Sprintf("todo cannot move from %s to %s", terr.From, terr.To))
	}

	for _, m := range mappings {
		if !errors.Is(err, m.target) {
			continue
		}
		p := NewProblem(r, m.status, m.code, m.detail)
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			p.Errors = fieldErrors(verr.Fields)
		}
		return p
	}

	return NewProblem(r, http.StatusInternalServerError, CodeInternal, "an unexpected error occurred")
}

// WriteError writes the Problem for err.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	WriteProblem(w, r, ProblemFor(r, err))
}

// WriteProblem writes p with its status and the problem+json content type.
func WriteProblem(w http.ResponseWriter, r *http.Request, p Problem) {
	w.Header().Set("Content-Type", ProblemContentType)
	w.WriteHeader(p.Status)

	if err := json.NewEncoder(w).Encode(p); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encode problem",
			slog.String("code", p.Code),
			slog.Any("error", err),
		)
	}
}

// fieldErrors orders entries by location so responses are deterministic.
func fieldErrors(fields map[string]string) []FieldError {
	out := make([]FieldError, 0, len(fields))
	for field, msg := range fields {
		out = append(out, FieldError{Location: "body." + field, Message: msg})
	}
	slices.SortFunc(out, func(a, b FieldError) int {
		return cmp.Compare(a.Location, b.Location)
	})
	return out
}
