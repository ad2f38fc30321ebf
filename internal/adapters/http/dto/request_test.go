package dto_test

import (
	"errors"
	"testing"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain"
)

// requireValidationField asserts err wraps ErrValidation and the resulting
// ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestSubmitTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := dto.SubmitTodoRequest{UserID: "alice", TodoType: "transcode", SourceFile: "s3://in/a.mp4"}

	tests := []struct {
		name      string
		mutate    func(*dto.SubmitTodoRequest)
		wantField string
	}{
		{name: "valid request passes", mutate: func(*dto.SubmitTodoRequest) {}},
		{name: "empty user id", mutate: func(r *dto.SubmitTodoRequest) { r.UserID = "" }, wantField: "user_id"},
		{name: "whitespace todo type", mutate: func(r *dto.SubmitTodoRequest) { r.TodoType = "  " }, wantField: "todo_type"},
		{name: "empty source file", mutate: func(r *dto.SubmitTodoRequest) { r.SourceFile = "" }, wantField: "source_file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := valid
			tt.mutate(&req)
			err := req.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, tt.wantField)
		})
	}
}

func TestSubmitTodoRequest_Validate_ReportsAllFields(t *testing.T) {
	t.Parallel()

	req := dto.SubmitTodoRequest{}
	err := req.Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("len(Fields) = %d, want 3, got %v", len(verr.Fields), verr.Fields)
	}
}

func TestCompleteTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	ok := dto.CompleteTodoRequest{ResultFile: "s3://out/a.mp4"}
	if err := ok.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	missing := dto.CompleteTodoRequest{ResultFile: " "}
	requireValidationField(t, missing.Validate(), "result_file")
}
