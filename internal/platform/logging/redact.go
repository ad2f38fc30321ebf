package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists, in lowercase, the HTTP headers whose values never
// reach a log line. The HTTP middleware and the masq layer both read it.
var SensitiveHeaders = map[string]bool{
	"authorization":        true,
	"x-api-key":            true,
	"cookie":               true,
	"x-amz-security-token": true,
}

var (
	sensitiveFields   = []string{"password", "secret", "token", "aws_secret_access_key"}
	sensitivePrefixes = []string{"secret_", "api_key", "aws_secret"}

	sensitiveValues = []*regexp.Regexp{
		// Bearer credentials in free text.
		regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		// JWTs; ten characters per segment keeps version strings out.
		regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
		// api_key=... and apikey: ...
		regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
		// AWS access key IDs echoed in SDK signature errors.
		regexp.MustCompile(`\b(AKIA|ASIA)[0-9A-Z]{16}\b`),
		// Signing parameters of presigned S3 URLs used as source or result files.
		regexp.MustCompile(`(?i)X-Amz-(Signature|Credential|Security-Token)=[^&\s]+`),
	}
)

// newRedactAttr builds the masq ReplaceAttr used by every handler from New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
