package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
)

// ErrInvalid wraps every validation failure reported by Config.Validate.
var ErrInvalid = errors.New("invalid configuration")

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	drivers    = []string{DriverDynamoDB, DriverSQLite, DriverMemory}
	exporters  = []string{"stdout", "otlp"}
)

// tableNamePattern restricts table names to plain identifiers so the SQLite
// backend can interpolate them into statements.
var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,62}$`)

// problems collects every failure so one Validate call reports them all.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) oneOf(key, got string, allowed []string) {
	if !slices.Contains(allowed, got) {
		p.addf("%s must be one of %v, got %q", key, allowed, got)
	}
}

// Validate reports all invalid settings at once. The error wraps ErrInvalid.
func (c *Config) Validate() error {
	var p problems
	c.Server.validate(&p)
	c.Log.validate(&p)
	c.Storage.validate(&p)
	c.Telemetry.validate(&p)

	if len(p) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(p...))
}

func (s *ServerConfig) validate(p *problems) {
	if s.Port < 1 || s.Port > 65535 {
		p.addf("server.port must be between 1 and 65535, got %d", s.Port)
	}
	if s.ReadTimeout <= 0 {
		p.addf("server.read_timeout must be positive, got %s", s.ReadTimeout)
	}
	if s.WriteTimeout <= 0 {
		p.addf("server.write_timeout must be positive, got %s", s.WriteTimeout)
	}
	if s.RequestTimeout <= 0 || s.RequestTimeout >= s.WriteTimeout {
		p.addf("server.request_timeout must be positive and below write_timeout %s, got %s",
			s.WriteTimeout, s.RequestTimeout)
	}
	if s.IdleTimeout < 0 {
		p.addf("server.idle_timeout must not be negative, got %s", s.IdleTimeout)
	}
}

func (l *LogConfig) validate(p *problems) {
	p.oneOf("log.level", l.Level, logLevels)
	p.oneOf("log.format", l.Format, logFormats)
}

func (st *StorageConfig) validate(p *problems) {
	p.oneOf("storage.driver", st.Driver, drivers)
	switch st.Driver {
	case DriverDynamoDB:
		if st.DynamoDB.Region == "" {
			p.addf("storage.dynamodb.region is required for the dynamodb driver")
		}
	case DriverSQLite:
		if st.SQLite.Path == "" {
			p.addf("storage.sqlite.path is required for the sqlite driver")
		}
	}

	if !tableNamePattern.MatchString(st.TableName) {
		p.addf("storage.table_name must be a plain identifier, got %q", st.TableName)
	}

	r := st.Retry
	if r.MaxAttempts < 1 {
		p.addf("storage.retry.max_attempts must be at least 1, got %d", r.MaxAttempts)
	}
	if r.InitialInterval < 0 {
		p.addf("storage.retry.initial_interval must not be negative, got %s", r.InitialInterval)
	}
	if r.MaxInterval < r.InitialInterval {
		p.addf("storage.retry.max_interval %s is below initial_interval %s", r.MaxInterval, r.InitialInterval)
	}
	if r.Multiplier < 1 {
		p.addf("storage.retry.multiplier must be at least 1, got %g", r.Multiplier)
	}

	cb := st.CircuitBreaker
	if cb.MaxFailures < 1 {
		p.addf("storage.circuit_breaker.max_failures must be at least 1, got %d", cb.MaxFailures)
	}
	if cb.HalfOpenLimit < 1 {
		p.addf("storage.circuit_breaker.half_open_limit must be at least 1, got %d", cb.HalfOpenLimit)
	}
	if cb.Timeout <= 0 {
		p.addf("storage.circuit_breaker.timeout must be positive, got %s", cb.Timeout)
	}
}

func (t *TelemetryConfig) validate(p *problems) {
	if !t.Enabled {
		return
	}
	p.oneOf("telemetry.exporter", t.Exporter, exporters)
	if t.Exporter == "otlp" && t.Endpoint == "" {
		p.addf("telemetry.endpoint is required for the otlp exporter")
	}
	if t.ServiceName == "" {
		p.addf("telemetry.service_name must not be empty")
	}
}
