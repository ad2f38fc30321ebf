// Package config loads and validates the service configuration from layered
// YAML profiles and APP_* environment variables.
package config

import (
	"log/slog"
	"net"
	"strconv"
	"time"
)

// Storage drivers accepted by StorageConfig.Driver.
const (
	DriverDynamoDB = "dynamodb"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Storage   StorageConfig   `koanf:"storage"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogValue reports the settings worth seeing at startup. Endpoints and paths
// are left out.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", c.Server.Addr()),
		slog.String("log_level", c.Log.Level),
		slog.String("storage_driver", c.Storage.Driver),
		slog.String("table", c.Storage.TableName),
		slog.Int("retry_max_attempts", c.Storage.Retry.MaxAttempts),
		slog.Bool("telemetry", c.Telemetry.Enabled),
	)
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`

	// RequestTimeout bounds handler execution. It must stay below
	// WriteTimeout so the timeout problem can still be written.
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StorageConfig selects and tunes the key-value store holding todo records.
// Only the section matching Driver is read.
type StorageConfig struct {
	Driver         string               `koanf:"driver"`
	TableName      string               `koanf:"table_name"`
	DynamoDB       DynamoDBConfig       `koanf:"dynamodb"`
	SQLite         SQLiteConfig         `koanf:"sqlite"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// DynamoDBConfig holds AWS DynamoDB client settings. Credentials come from
// the default AWS provider chain. Endpoint overrides the service URL, which
// is useful against DynamoDB Local.
type DynamoDBConfig struct {
	Region   string `koanf:"region"`
	Endpoint string `koanf:"endpoint"`
}

// SQLiteConfig holds the embedded SQLite backend settings.
type SQLiteConfig struct {
	Path string `koanf:"path"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
