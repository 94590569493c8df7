package tagscope

import (
	"log/slog"

	"github.com/randalmurphal/tagscope/pkg/tagscope/observability"
)

// Option configures a Scope.
type Option func(*Scope)

// WithLogger sets the logger for the scope.
// Defaults to slog.Default(). Evaluation and definition events are
// logged at debug level, failures at error level.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scope) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithScopeID sets the scope identifier used in logs and trace spans.
// If not set, a UUID-based identifier is generated.
func WithScopeID(id string) Option {
	return func(s *Scope) {
		if id != "" {
			s.id = id
		}
	}
}

// WithMetrics enables OpenTelemetry metrics for the scope.
// Disabled by default. The recorder uses the global OTel meter
// provider; configure it before creating the scope.
func WithMetrics(enabled bool) Option {
	return func(s *Scope) {
		if enabled {
			s.metrics = observability.NewMetricsRecorder()
		} else {
			s.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry tracing for the scope.
// Disabled by default. Spans use the global OTel tracer provider;
// configure it before creating the scope.
func WithTracing(enabled bool) Option {
	return func(s *Scope) {
		if enabled {
			s.spans = observability.NewSpanManager()
		} else {
			s.spans = observability.NoopSpanManager{}
		}
	}
}
