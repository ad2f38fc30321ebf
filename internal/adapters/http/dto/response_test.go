package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
)

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	result := "s3://out/a.mp4"
	td := &todo.Todo{
		UserID:     "alice",
		ID:         "0b6f3c1e",
		Type:       "transcode",
		State:      todo.StateCompleted,
		SourceFile: "s3://in/a.mp4",
		ResultFile: &result,
	}

	got := dto.ToTodoResponse(td)

	if got.UserUUID != "alice" || got.TodoUUID != "0b6f3c1e" {
		t.Errorf("ids = (%q, %q), want (alice, 0b6f3c1e)", got.UserUUID, got.TodoUUID)
	}
	if got.TodoType != "transcode" {
		t.Errorf("TodoType = %q, want %q", got.TodoType, "transcode")
	}
	if got.State != todo.StateCompleted {
		t.Errorf("State = %q, want %q", got.State, todo.StateCompleted)
	}
	if got.ResultFile == nil || *got.ResultFile != result {
		t.Errorf("ResultFile = %v, want %q", got.ResultFile, result)
	}
}

func TestTodoResponse_JSON(t *testing.T) {
	t.Parallel()

	td := &todo.Todo{
		UserID:     "alice",
		ID:         "0b6f3c1e",
		Type:       "transcode",
		State:      todo.StateNotStarted,
		SourceFile: "s3://in/a.mp4",
	}

	b, err := json.Marshal(dto.ToTodoResponse(td))
	if err != nil {
		t.Fatalf("Marshal unexpected error: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("Unmarshal unexpected error: %v", err)
	}

	for _, key := range []string{"user_uuid", "todo_uuid", "todo_type", "state", "source_file", "result_file"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("JSON missing key %q: %s", key, b)
		}
	}
	if raw["result_file"] != nil {
		t.Errorf("result_file = %v, want null", raw["result_file"])
	}
	if raw["state"] != "NotStarted" {
		t.Errorf("state = %v, want NotStarted", raw["state"])
	}
}

func TestTodoIdentifierResponse_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(dto.TodoIdentifierResponse{TodoGlobalID: "alice_0b6f3c1e"})
	if err != nil {
		t.Fatalf("Marshal unexpected error: %v", err)
	}
	if string(b) != `{"todo_global_id":"alice_0b6f3c1e"}` {
		t.Errorf("JSON = %s", b)
	}
}
