package ports

import "context"

// HealthChecker is a dependency the readiness probe can interrogate, such as
// the storage executor wrapping a todo backend.
type HealthChecker interface {
	// Name keys the checker in readiness reports, e.g. "storage.dynamodb".
	Name() string

	// HealthCheck returns nil when the dependency can serve traffic. It must
	// return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness endpoint.
type HealthRegistry interface {
	// Register adds checker, replacing any checker with the same name.
	Register(checker HealthChecker)

	// CheckAll runs every checker and maps its name to the result; a nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}
