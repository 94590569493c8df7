package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
)

func TestNoopMetrics_DoesNothing(t *testing.T) {
	m := NoopMetrics{}

	t.Run("record evaluation", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordEvaluation(context.Background(), 100*time.Millisecond, nil)
			m.RecordEvaluation(context.Background(), 0, errors.New("test"))
		})
	})

	t.Run("record tag defined", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordTagDefined(context.Background(), "objects")
			m.RecordTagDefined(context.Background(), "")
		})
	})

	t.Run("record objects tagged", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordObjectsTagged(context.Background(), 0)
			m.RecordObjectsTagged(context.Background(), 100)
		})
	})
}

func TestNoopSpanManager_DoesNothing(t *testing.T) {
	m := NoopSpanManager{}

	t.Run("start span returns context unchanged", func(t *testing.T) {
		ctx := context.Background()
		newCtx, span := m.StartEvaluateSpan(ctx, "scope", "eval", "a | b")
		assert.Equal(t, ctx, newCtx)
		assert.NotNil(t, span)
	})

	t.Run("end span tolerates nil and errors", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.EndSpanWithError(nil, nil)
			m.EndSpanWithError(noopSpan, errors.New("test"))
		})
	})

	t.Run("add span event", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.AddSpanEvent(context.Background(), "event", attribute.String("k", "v"))
		})
	})
}
