// Package observability provides structured logging, metrics, and
// tracing helpers for the tagging engine.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// EnrichLogger adds evaluation context to a logger.
// Returns a new logger with scope_id and eval_id fields.
func EnrichLogger(logger *slog.Logger, scopeID, evalID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("scope_id", scopeID),
		slog.String("eval_id", evalID),
	)
}

// LogTagCreated logs the creation of a tag on first access.
func LogTagCreated(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Debug("tag created on first use",
		slog.String("tag", name),
	)
}

// LogTagDefined logs a tag definition. Kind is "objects" for simple
// tags and "expression" for composite tags.
func LogTagDefined(logger *slog.Logger, name, kind string) {
	if logger == nil {
		return
	}
	logger.Debug("tag defined",
		slog.String("tag", name),
		slog.String("kind", kind),
	)
}

// LogObjectTagged logs an object being associated with tags.
func LogObjectTagged(logger *slog.Logger, value any, tags []string) {
	if logger == nil {
		return
	}
	logger.Debug("object tagged",
		slog.String("object", fmt.Sprintf("%v", value)),
		slog.String("tags", strings.Join(tags, ", ")),
	)
}

// LogEvaluateStart logs the start of an expression evaluation.
func LogEvaluateStart(logger *slog.Logger, expression string) {
	if logger == nil {
		return
	}
	logger.Debug("evaluating expression",
		slog.String("expression", expression),
	)
}

// LogEvaluateComplete logs successful expression evaluation.
func LogEvaluateComplete(logger *slog.Logger, expression string, matched int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("expression evaluated",
		slog.String("expression", expression),
		slog.Int("matched", matched),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEvaluateError logs expression evaluation failure.
func LogEvaluateError(logger *slog.Logger, expression string, err error) {
	if logger == nil {
		return
	}
	logger.Error("expression evaluation failed",
		slog.String("expression", expression),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000.0
	}
}
