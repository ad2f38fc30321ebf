package middleware_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/logging"
)

// jsonLines decodes every JSON log line written to buf.
func jsonLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry), "line: %s", sc.Text())
		out = append(out, entry)
	}
	return out
}

func findMsg(entries []map[string]any, msg string) map[string]any {
	for _, e := range entries {
		if e["msg"] == msg {
			return e
		}
	}
	return nil
}

func jsonLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLogging_CompletionLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.CorrelationID(), middleware.Logging(jsonLogger(&buf, slog.LevelInfo)))
	r.Put("/todo/{todoGlobalID}/start", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"todo_global_id":"alice_1"}`))
	})

	req := httptest.NewRequest(http.MethodPut, "/todo/alice_1/start", http.NoBody)
	req.Header.Set("X-Request-ID", "req-1")
	req.Header.Set("X-Correlation-ID", "corr-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := jsonLines(t, &buf)
	require.Len(t, entries, 1, "only the completion line is logged at info")

	e := entries[0]
	assert.Equal(t, "request completed", e["msg"])
	assert.Equal(t, "INFO", e["level"])
	assert.Equal(t, "PUT", e["method"])
	assert.Equal(t, "/todo/alice_1/start", e["path"])
	assert.Equal(t, "/todo/{todoGlobalID}/start", e["route"])
	assert.InDelta(t, float64(http.StatusOK), e["status"], 0)
	assert.InDelta(t, float64(len(`{"todo_global_id":"alice_1"}`)), e["bytes"], 0)
	assert.Equal(t, "req-1", e["request_id"])
	assert.Equal(t, "corr-1", e["correlation_id"])
	assert.Contains(t, e, "duration")
}

func TestLogging_LevelFollowsOutcome(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		path   string
		status int
		want   string
	}{
		{name: "success", path: "/todo", status: http.StatusOK, want: "INFO"},
		{name: "client error", path: "/todo", status: http.StatusBadRequest, want: "WARN"},
		{name: "not found", path: "/todo/bob_missing", status: http.StatusNotFound, want: "WARN"},
		{name: "dependency failure", path: "/todo", status: http.StatusFailedDependency, want: "WARN"},
		{name: "server error", path: "/todo", status: http.StatusInternalServerError, want: "ERROR"},
		{name: "health probe", path: "/health/ready", status: http.StatusOK, want: "DEBUG"},
		{name: "failing health probe", path: "/health/ready", status: http.StatusServiceUnavailable, want: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			handler := middleware.Logging(jsonLogger(&buf, slog.LevelDebug))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, http.NoBody))

			e := findMsg(jsonLines(t, &buf), "request completed")
			require.NotNil(t, e)
			assert.Equal(t, tt.want, e["level"])
			assert.Equal(t, "unmatched", e["route"])
		})
	}
}

func TestLogging_DebugHeadersRedacted(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.Logging(jsonLogger(&buf, slog.LevelDebug))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/todo", http.NoBody)
	req.Header.Set("Authorization", "Bearer top-secret")
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	e := findMsg(jsonLines(t, &buf), "request received")
	require.NotNil(t, e)
	headers, ok := e["headers"].(map[string]any)
	require.True(t, ok, "headers group missing: %v", e)
	assert.Equal(t, "[REDACTED]", headers["Authorization"])
	assert.Equal(t, "application/json", headers["Content-Type"])
	assert.NotContains(t, buf.String(), "top-secret")
}

func TestLogging_StoresEnrichedLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := middleware.RequestID()(
		middleware.Logging(jsonLogger(&buf, slog.LevelInfo))(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).InfoContext(r.Context(), "todo submitted")
		})),
	)

	req := httptest.NewRequest(http.MethodPost, "/todo", http.NoBody)
	req.Header.Set("X-Request-ID", "ctx-logger-test")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	e := findMsg(jsonLines(t, &buf), "todo submitted")
	require.NotNil(t, e, "handler log not captured through the context logger")
	assert.Equal(t, "ctx-logger-test", e["request_id"])
}
