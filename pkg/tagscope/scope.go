package tagscope

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/tagscope/pkg/tagscope/expr"
	"github.com/randalmurphal/tagscope/pkg/tagscope/ident"
	"github.com/randalmurphal/tagscope/pkg/tagscope/objectset"
	"github.com/randalmurphal/tagscope/pkg/tagscope/observability"
	"github.com/randalmurphal/tagscope/pkg/tagscope/registry"
)

// Scope groups related tags together and is the entry point for
// everything in this package: it defines tags, tags objects and
// evaluates tag expressions.
//
// A Scope starts empty; tags and objects accumulate through Define and
// AddObject. There is no teardown. Tag names are normalized before
// lookup, so "Foo Bar", "foo-bar" and "FooBar" all address the same
// tag.
//
// Scope is designed for single-goroutine use. Callers that share a
// Scope across goroutines must add their own synchronization around
// mutation and evaluation.
type Scope struct {
	id      string
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager

	tags *registry.Registry[string, *Tag]

	// evaluating tracks registry keys currently being resolved, so a
	// composite tag that ends up referencing itself fails with a
	// CycleError instead of recursing forever.
	evaluating map[string]struct{}
}

// NewScope creates an empty scope.
//
// Example:
//
//	scope := tagscope.NewScope(
//	    tagscope.WithLogger(logger),
//	    tagscope.WithMetrics(true))
func NewScope(opts ...Option) *Scope {
	s := &Scope{
		id:         fmt.Sprintf("scope-%s", uuid.New().String()[:8]),
		logger:     slog.Default(),
		metrics:    observability.NoopMetrics{},
		spans:      observability.NoopSpanManager{},
		tags:       registry.New[string, *Tag](),
		evaluating: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the scope's identifier, used in logs and trace spans.
func (s *Scope) ID() string {
	return s.id
}

// Tag returns the tag for a name, creating it on first access.
// The name is normalized for lookup but stored as supplied.
// Fails only when the name normalizes to an empty identifier.
func (s *Scope) Tag(name string) (*Tag, error) {
	key, err := ident.Generate(name, true)
	if err != nil {
		return nil, err
	}
	return s.tagForKey(key, name), nil
}

// tagForKey returns the tag for an already normalized registry key.
func (s *Scope) tagForKey(key, name string) *Tag {
	return s.tags.GetOrCreate(key, func() *Tag {
		observability.LogTagCreated(s.logger, name)
		return &Tag{scope: s, name: name}
	})
}

// AddObject tags an object with one or more tag names.
// The object can be any comparable value. Each named tag is created on
// first use; tagging forces a composite tag back to a stored set (see
// Tag.Add).
func (s *Scope) AddObject(value any, tagNames ...string) error {
	observability.LogObjectTagged(s.logger, value, tagNames)
	for _, name := range tagNames {
		t, err := s.Tag(name)
		if err != nil {
			return err
		}
		if err := t.Add(value); err != nil {
			return err
		}
	}
	s.metrics.RecordObjectsTagged(context.Background(), int64(len(tagNames)))
	return nil
}

// Define sets the value of a tag and returns it.
//
// A string value installs an expression (the tag becomes composite);
// a slice, array or objectset.Set installs the values as the tag's
// stored objects. Any other value fails with *UnsupportedValueError.
//
// DefineExpression and DefineObjects are the explicit forms; Define
// exists for callers whose tag values arrive untyped (for example from
// a decoded configuration file).
func (s *Scope) Define(name string, value any) (*Tag, error) {
	switch v := value.(type) {
	case string:
		return s.DefineExpression(name, v)
	case objectset.Set:
		t, err := s.Tag(name)
		if err != nil {
			return nil, err
		}
		t.setObjectSet(v)
		s.recordDefine(name, "objects")
		return t, nil
	case []any:
		return s.DefineObjects(name, v...)
	}

	rv := reflect.ValueOf(value)
	if rv.IsValid() && (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) {
		values := make([]any, rv.Len())
		for i := range values {
			values[i] = rv.Index(i).Interface()
		}
		return s.DefineObjects(name, values...)
	}
	return nil, &UnsupportedValueError{Name: name, Value: value}
}

// DefineObjects sets a tag's stored objects, replacing any prior
// content or expression, and returns the tag.
func (s *Scope) DefineObjects(name string, values ...any) (*Tag, error) {
	t, err := s.Tag(name)
	if err != nil {
		return nil, err
	}
	t.SetObjects(values...)
	s.recordDefine(name, "objects")
	return t, nil
}

// DefineExpression sets a tag's expression, making it composite, and
// returns the tag.
//
// The expression is not parsed here; it is evaluated lazily whenever
// the tag's objects are read, so it may reference tags that do not
// exist yet. Use Parse to validate an expression up front.
func (s *Scope) DefineExpression(name, expression string) (*Tag, error) {
	t, err := s.Tag(name)
	if err != nil {
		return nil, err
	}
	t.SetExpression(expression)
	s.recordDefine(name, "expression")
	return t, nil
}

func (s *Scope) recordDefine(name, kind string) {
	observability.LogTagDefined(s.logger, name, kind)
	s.metrics.RecordTagDefined(context.Background(), kind)
}

// Parse validates an expression and wraps it in an unnamed composite
// tag, without registering anything in the scope.
func (s *Scope) Parse(expression string) (*Tag, error) {
	if _, err := expr.Parse(expression); err != nil {
		return nil, err
	}
	return &Tag{scope: s, expression: expression}, nil
}

// EvaluateRaw evaluates a tag expression and returns the matching
// objects as a set.
//
// Each referenced tag name resolves through the scope: a name whose
// tag has no objects fails with *EmptyTagError, malformed text fails
// with *expr.SyntaxError, and mutually recursive composite tags fail
// with *CycleError. An empty composed result is returned as an empty
// set, not an error.
func (s *Scope) EvaluateRaw(ctx context.Context, expression string) (objectset.Set, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	evalID := fmt.Sprintf("eval-%s", uuid.New().String()[:8])
	logger := observability.EnrichLogger(s.logger, s.id, evalID)
	ctx, span := s.spans.StartEvaluateSpan(ctx, s.id, evalID, expression)

	observability.LogEvaluateStart(logger, expression)
	start := time.Now()
	objects, err := s.resolveExpression(expression)
	duration := time.Since(start)

	s.metrics.RecordEvaluation(ctx, duration, err)
	if err != nil {
		observability.LogEvaluateError(logger, expression, err)
		s.spans.EndSpanWithError(span, err)
		return nil, err
	}
	observability.LogEvaluateComplete(logger, expression, objects.Len(),
		float64(duration.Microseconds())/1000.0)
	s.spans.EndSpanWithError(span, nil)
	return objects, nil
}

// Evaluate evaluates a tag expression and returns the matching objects
// as a deterministically sorted list. See EvaluateRaw and SortObjects
// for the failure modes.
func (s *Scope) Evaluate(ctx context.Context, expression string) ([]any, error) {
	objects, err := s.EvaluateRaw(ctx, expression)
	if err != nil {
		return nil, err
	}
	return s.SortObjects(objects)
}

// resolveExpression is the internal evaluation path shared by
// EvaluateRaw and composite tag resolution. It carries no telemetry of
// its own so nested evaluations do not spawn nested spans.
func (s *Scope) resolveExpression(expression string) (objectset.Set, error) {
	return expr.Evaluate(expression, objectResolver{scope: s})
}

// AllObjects returns the union of every simple tag's stored objects.
//
// Composite tags are skipped: every object they can match is stored on
// some simple tag, so folding them in would change nothing. The
// default tag is skipped because its value is this union.
func (s *Scope) AllObjects() objectset.Set {
	objects := objectset.New()
	s.tags.Range(func(_ string, t *Tag) bool {
		if t.Identifier() != DefaultTagName && t.expression == "" && t.objects != nil {
			objects.Merge(t.objects)
		}
		return true
	})
	return objects
}

// objectResolver exposes the scope's tags to the expression evaluator,
// translating empty tags into typed failures and guarding against
// cyclic composite definitions.
type objectResolver struct {
	scope *Scope
}

// Resolve implements expr.Resolver.
func (r objectResolver) Resolve(name string) (objectset.Set, error) {
	key, err := ident.Generate(name, true)
	if err != nil {
		return nil, err
	}
	if _, active := r.scope.evaluating[key]; active {
		return nil, &CycleError{Name: name}
	}
	r.scope.evaluating[key] = struct{}{}
	defer delete(r.scope.evaluating, key)

	objects, err := r.scope.tagForKey(key, name).Objects()
	if err != nil {
		return nil, err
	}
	if objects.Len() == 0 {
		return nil, &EmptyTagError{Name: name}
	}
	return objects, nil
}
