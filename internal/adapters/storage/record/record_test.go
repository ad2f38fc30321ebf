package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/storage/record"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/domain/todo"
)

func strPtr(s string) *string { return &s }

func TestFromTodo(t *testing.T) {
	t.Parallel()

	t.Run("omits result file when nil", func(t *testing.T) {
		t.Parallel()

		item := record.FromTodo(&todo.Todo{
			UserID: "alice", ID: "t1", Type: "transcode",
			State: todo.StateNotStarted, SourceFile: "in.mp4",
		})

		assert.Equal(t, record.Item{
			"pK":          "alice",
			"sK":          "t1",
			"todo_type":   "transcode",
			"state":       "NotStarted",
			"source_file": "in.mp4",
		}, item)
	})

	t.Run("writes result file when set", func(t *testing.T) {
		t.Parallel()

		item := record.FromTodo(&todo.Todo{
			UserID: "alice", ID: "t1", Type: "transcode",
			State: todo.StateCompleted, SourceFile: "in.mp4", ResultFile: strPtr("out.mp4"),
		})

		assert.Equal(t, "out.mp4", item[record.AttrResultFile])
		assert.Equal(t, "Completed", item[record.AttrState])
	})
}

func TestToTodo(t *testing.T) {
	t.Parallel()

	base := func() record.Item {
		return record.Item{
			"pK": "alice", "sK": "t1", "todo_type": "transcode",
			"state": "Paused", "source_file": "in.mp4",
		}
	}

	t.Run("decodes all fields", func(t *testing.T) {
		t.Parallel()

		item := base()
		item["result_file"] = "out.mp4"

		got, err := record.ToTodo(item)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.UserID)
		assert.Equal(t, "t1", got.ID)
		assert.Equal(t, "transcode", got.Type)
		assert.Equal(t, todo.StatePaused, got.State)
		assert.Equal(t, "in.mp4", got.SourceFile)
		require.NotNil(t, got.ResultFile)
		assert.Equal(t, "out.mp4", *got.ResultFile)
	})

	t.Run("absent result file is nil", func(t *testing.T) {
		t.Parallel()

		got, err := record.ToTodo(base())
		require.NoError(t, err)
		assert.Nil(t, got.ResultFile)
	})

	t.Run("empty result file is kept", func(t *testing.T) {
		t.Parallel()

		item := base()
		item["result_file"] = ""

		got, err := record.ToTodo(item)
		require.NoError(t, err)
		require.NotNil(t, got.ResultFile)
		assert.Empty(t, *got.ResultFile)
	})

	for _, attr := range []string{"pK", "sK", "todo_type", "state", "source_file"} {
		t.Run("missing "+attr, func(t *testing.T) {
			t.Parallel()

			item := base()
			delete(item, attr)

			_, err := record.ToTodo(item)
			require.ErrorIs(t, err, record.ErrMalformed)
			assert.Contains(t, err.Error(), attr)
		})
	}

	t.Run("unknown state", func(t *testing.T) {
		t.Parallel()

		item := base()
		item["state"] = "Archived"

		_, err := record.ToTodo(item)
		require.ErrorIs(t, err, record.ErrMalformed)
		assert.ErrorIs(t, err, todo.ErrUnknownState)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, rf := range []*string{nil, strPtr("s3://out/x")} {
		for _, s := range todo.States() {
			in := todo.Todo{UserID: "u", ID: "id", Type: "ty", State: s, SourceFile: "src", ResultFile: rf}

			out, err := record.ToTodo(record.FromTodo(&in))
			require.NoError(t, err)
			assert.Equal(t, in, *out)
		}
	}
}
