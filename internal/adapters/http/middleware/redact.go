package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/todo-lifecycle-service/internal/platform/logging"
)

const redacted = "[REDACTED]"

// RedactHeaders renders headers as a "headers" group with keys in sorted
// order. Values of logging.SensitiveHeaders are replaced; multi-value headers
// are comma joined.
func RedactHeaders(headers http.Header) slog.Attr {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		v := redacted
		if !logging.SensitiveHeaders[strings.ToLower(k)] {
			v = strings.Join(headers[k], ",")
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return slog.Group("headers", attrs...)
}
