package telemetry

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
var (
	AttrHTTPMethod       = attribute.Key("http.method")
	AttrHTTPStatus       = attribute.Key("http.status_code")
	AttrHTTPRoute        = attribute.Key("http.route")
	AttrStorageBackend   = attribute.Key("storage.backend")
	AttrStorageOperation = attribute.Key("storage.operation")
	AttrResult           = attribute.Key("result")
)

// Metric names.
const (
	MetricServerRequestDuration    = "http.server.request.duration"
	MetricServerRequestTotal       = "http.server.request.total"
	MetricStorageOperationDuration = "todo.storage.operation.duration"
	MetricStorageOperationTotal    = "todo.storage.operation.total"
)

// Metrics holds the service's metric instruments.
type Metrics struct {
	ServerRequestDuration    metric.Float64Histogram
	ServerRequestTotal       metric.Int64Counter
	StorageOperationDuration metric.Float64Histogram
	StorageOperationTotal    metric.Int64Counter
}

// NewMetrics creates the instruments on a meter named scope.
func NewMetrics(mp metric.MeterProvider, scope string) (*Metrics, error) {
	meter := mp.Meter(scope)
	var (
		m   Metrics
		err error
	)

	if m.ServerRequestDuration, err = meter.Float64Histogram(MetricServerRequestDuration,
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating %s: %w", MetricServerRequestDuration, err)
	}
	if m.ServerRequestTotal, err = meter.Int64Counter(MetricServerRequestTotal,
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating %s: %w", MetricServerRequestTotal, err)
	}
	if m.StorageOperationDuration, err = meter.Float64Histogram(MetricStorageOperationDuration,
		metric.WithDescription("Duration of todo storage operations, including retries"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating %s: %w", MetricStorageOperationDuration, err)
	}
	if m.StorageOperationTotal, err = meter.Int64Counter(MetricStorageOperationTotal,
		metric.WithDescription("Total number of todo storage operations"),
		metric.WithUnit("{operation}"),
	); err != nil {
		return nil, fmt.Errorf("creating %s: %w", MetricStorageOperationTotal, err)
	}
	return &m, nil
}
