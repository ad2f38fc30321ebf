package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/adapters/http/middleware"
)

type capturedIDs struct {
	request     string
	correlation string
}

func serveIDs(t *testing.T, headers map[string]string) (capturedIDs, *httptest.ResponseRecorder) {
	t.Helper()

	var got capturedIDs
	handler := middleware.RequestID()(middleware.CorrelationID()(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got.request = middleware.RequestIDFromContext(r.Context())
			got.correlation = middleware.CorrelationIDFromContext(r.Context())
		}),
	))

	req := httptest.NewRequest(http.MethodPost, "/todo", http.NoBody)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return got, rec
}

func TestRequestID_Generated(t *testing.T) {
	t.Parallel()

	got, rec := serveIDs(t, nil)

	id, err := uuid.Parse(got.request)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
	assert.Equal(t, got.request, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, got.request, got.correlation, "correlation falls back to request id")
	assert.Equal(t, got.request, rec.Header().Get("X-Correlation-ID"))
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 50 {
		got, _ := serveIDs(t, nil)
		seen[got.request] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestIDs_Inbound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		headers         map[string]string
		wantRequest     string
		wantCorrelation string
	}{
		{
			name:            "both supplied",
			headers:         map[string]string{"X-Request-ID": "req-1", "X-Correlation-ID": "batch-7"},
			wantRequest:     "req-1",
			wantCorrelation: "batch-7",
		},
		{
			name:            "only request id",
			headers:         map[string]string{"X-Request-ID": "req-2"},
			wantRequest:     "req-2",
			wantCorrelation: "req-2",
		},
		{
			name:            "only correlation id",
			headers:         map[string]string{"X-Correlation-ID": "batch-8"},
			wantCorrelation: "batch-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, rec := serveIDs(t, tt.headers)
			if tt.wantRequest != "" {
				assert.Equal(t, tt.wantRequest, got.request)
			} else {
				assert.NotEmpty(t, got.request)
			}
			assert.Equal(t, tt.wantCorrelation, got.correlation)
			assert.Equal(t, tt.wantCorrelation, rec.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestIDs_RejectMalformedInbound(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"too long":       strings.Repeat("a", 129),
		"contains space": "req 1",
		"control char":   "req\x01",
		"non ascii":      "réq",
	}

	for name, bad := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, _ := serveIDs(t, map[string]string{"X-Request-ID": bad, "X-Correlation-ID": bad})
			assert.NotEqual(t, bad, got.request)
			assert.Equal(t, got.request, got.correlation)
			_, err := uuid.Parse(got.request)
			assert.NoError(t, err)
		})
	}
}

func TestIDsFromContext_Empty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, middleware.RequestIDFromContext(ctx))
	assert.Empty(t, middleware.CorrelationIDFromContext(ctx))

	ctx = middleware.WithCorrelationID(middleware.WithRequestID(ctx, "r"), "c")
	assert.Equal(t, "r", middleware.RequestIDFromContext(ctx))
	assert.Equal(t, "c", middleware.CorrelationIDFromContext(ctx))
}
