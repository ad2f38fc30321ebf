package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantBytes  int64
		wantHeader bool
	}{
		{
			name:       "nothing written",
			write:      func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:       "explicit status",
			write:      func(w http.ResponseWriter) { w.WriteHeader(http.StatusFailedDependency) },
			wantStatus: http.StatusFailedDependency,
			wantHeader: true,
		},
		{
			name: "first status wins",
			write: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusNotFound)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus: http.StatusNotFound,
			wantHeader: true,
		},
		{
			name: "implicit 200 and byte count",
			write: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"todo_global_id":`))
				_, _ = w.Write([]byte(`"alice_1"}`))
			},
			wantStatus: http.StatusOK,
			wantBytes:  int64(len(`{"todo_global_id":"alice_1"}`)),
			wantHeader: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sw := newStatusWriter(rec)
			tt.write(sw)

			assert.Equal(t, tt.wantStatus, sw.status)
			assert.Equal(t, tt.wantBytes, sw.bytes)
			assert.Equal(t, tt.wantHeader, sw.wroteHeader)
			if tt.wantHeader {
				assert.Equal(t, tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestStatusWriter_Unwrap(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := newStatusWriter(rec)

	require.Same(t, rec, sw.Unwrap())
	assert.NoError(t, http.NewResponseController(sw).Flush())
}
