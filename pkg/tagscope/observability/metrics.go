package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records tagging engine metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordEvaluation records an expression evaluation with its
	// duration and error status.
	RecordEvaluation(ctx context.Context, duration time.Duration, err error)

	// RecordTagDefined records a tag definition. Kind is "objects" or
	// "expression".
	RecordTagDefined(ctx context.Context, kind string)

	// RecordObjectsTagged records an object being associated with a
	// number of tags.
	RecordObjectsTagged(ctx context.Context, tagCount int64)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	evaluations   metric.Int64Counter
	evalLatency   metric.Float64Histogram
	evalErrors    metric.Int64Counter
	tagsDefined   metric.Int64Counter
	objectsTagged metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("tagscope")

	evaluations, err := meter.Int64Counter("tagscope.evaluations",
		metric.WithDescription("Number of expression evaluations"),
	)
	if err != nil {
		return nil, err
	}

	evalLatency, err := meter.Float64Histogram("tagscope.evaluate.latency_ms",
		metric.WithDescription("Expression evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	evalErrors, err := meter.Int64Counter("tagscope.evaluate.errors",
		metric.WithDescription("Number of expression evaluation errors"),
	)
	if err != nil {
		return nil, err
	}

	tagsDefined, err := meter.Int64Counter("tagscope.tags.defined",
		metric.WithDescription("Number of tag definitions"),
	)
	if err != nil {
		return nil, err
	}

	objectsTagged, err := meter.Int64Counter("tagscope.objects.tagged",
		metric.WithDescription("Number of object-to-tag associations"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		evaluations:   evaluations,
		evalLatency:   evalLatency,
		evalErrors:    evalErrors,
		tagsDefined:   tagsDefined,
		objectsTagged: objectsTagged,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordEvaluation records an expression evaluation.
func (m *otelMetrics) RecordEvaluation(ctx context.Context, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.Bool("success", err == nil),
	}

	m.evaluations.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.evalLatency.Record(ctx, float64(duration.Microseconds())/1000.0, metric.WithAttributes(attrs...))

	if err != nil {
		m.evalErrors.Add(ctx, 1)
	}
}

// RecordTagDefined records a tag definition.
func (m *otelMetrics) RecordTagDefined(ctx context.Context, kind string) {
	m.tagsDefined.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", kind),
	))
}

// RecordObjectsTagged records an object-to-tag association.
func (m *otelMetrics) RecordObjectsTagged(ctx context.Context, tagCount int64) {
	m.objectsTagged.Add(ctx, tagCount)
}
