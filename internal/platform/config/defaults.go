package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults is the lowest configuration layer. Every key must appear here for
// the APP_* lookup to find it.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "8s",

		"log.level":  "info",
		"log.format": "json",

		"storage.driver":                          DriverMemory,
		"storage.table_name":                      "todo",
		"storage.dynamodb.region":                 "",
		"storage.dynamodb.endpoint":               "",
		"storage.sqlite.path":                     "todo.db",
		"storage.retry.max_attempts":              defaultRetryMaxAttempts,
		"storage.retry.initial_interval":          "50ms",
		"storage.retry.max_interval":              "2s",
		"storage.retry.multiplier":                defaultRetryMultiplier,
		"storage.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"storage.circuit_breaker.timeout":         "30s",
		"storage.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-lifecycle-service",
	}
}
