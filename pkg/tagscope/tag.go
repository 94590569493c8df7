package tagscope

import (
	"fmt"

	"github.com/randalmurphal/tagscope/pkg/tagscope/expr"
	"github.com/randalmurphal/tagscope/pkg/tagscope/ident"
	"github.com/randalmurphal/tagscope/pkg/tagscope/objectset"
)

// DefaultTagName is the identifier of the default tag that matches all
// tagged objects.
const DefaultTagName = "all"

// Tag represents a named or anonymous set of objects.
//
// There are three kinds of tags:
//
//   - Simple tags store their objects directly. Defining objects for a
//     name, or tagging objects with it, produces a simple tag.
//   - Composite tags carry an expression instead of objects; their
//     object set is computed from the expression every time it is
//     read, so it follows mutations of the tags it references.
//   - The default tag (identifier "all") computes the union of every
//     simple tag's objects on demand and never stores anything.
//
// A Tag belongs to exactly one Scope for its whole lifetime. Tags with
// a name are created through the scope's registry; composition and
// Scope.Parse produce unnamed tags.
//
// Tag is not safe for concurrent use; the engine assumes a single
// goroutine per Scope.
type Tag struct {
	scope      *Scope
	name       string
	expression string
	objects    objectset.Set // nil until stored or lazily bound

	// Cached derived fields. identifier is derived from name;
	// idOrExpr is the key used when this tag is embedded in a
	// composed expression. The setters invalidate exactly the caches
	// whose inputs they change.
	identifier     string
	identifierDone bool
	idOrExpr       string
	idOrExprDone   bool
}

// Name returns the user supplied tag name, or "" for composed tags.
func (t *Tag) Name() string {
	return t.name
}

// Identifier returns the readable identifier derived from the name,
// or "" for unnamed tags.
func (t *Tag) Identifier() string {
	if !t.identifierDone {
		if t.name != "" {
			// Names reach a Tag through the registry, which has
			// already normalized them successfully, so generation
			// cannot fail here.
			if id, err := ident.Generate(t.name, false); err == nil {
				t.identifier = id
			}
		}
		t.identifierDone = true
	}
	return t.identifier
}

// Expression returns the tag's expression, or "" for simple tags.
func (t *Tag) Expression() string {
	return t.expression
}

// SetExpression turns the tag into a composite tag.
// Any stored objects are discarded.
func (t *Tag) SetExpression(text string) {
	t.expression = text
	t.objects = nil
	t.idOrExprDone = false
}

// SetObjects replaces the tag's objects with a fresh set of the given
// values. Any expression is discarded.
func (t *Tag) SetObjects(values ...any) {
	t.setObjectSet(objectset.New(values...))
}

// setObjectSet stores a copy of the set and clears the expression.
func (t *Tag) setObjectSet(s objectset.Set) {
	t.objects = s.Clone()
	t.expression = ""
	t.idOrExprDone = false
}

// Objects resolves the tag's object set.
//
// Explicitly stored objects win. Otherwise the default tag computes
// the union of all simple tags, a composite tag evaluates its
// expression against the current state of the scope, and a plain tag
// binds and returns a fresh empty set for future mutation.
//
// The returned set is the tag's live storage for simple tags; treat it
// as read-only and mutate through Add or SetObjects instead.
func (t *Tag) Objects() (objectset.Set, error) {
	if t.objects != nil {
		return t.objects, nil
	}
	if t.Identifier() == DefaultTagName {
		return t.scope.AllObjects(), nil
	}
	if t.expression != "" {
		return t.scope.resolveExpression(t.expression)
	}
	t.objects = objectset.New()
	return t.objects, nil
}

// Add inserts a single object into the tag's stored set.
//
// A composite tag is first materialized: its expression is evaluated
// once, the result becomes the stored set and the expression is
// cleared, so the tag stops tracking the tags it referenced. The
// default tag cannot be added to; its value is always computed.
func (t *Tag) Add(value any) error {
	if t.Identifier() == DefaultTagName {
		return fmt.Errorf("cannot add %v to tag %q: %w", value, t.name, ErrReservedTag)
	}
	if t.objects == nil {
		if t.expression != "" {
			resolved, err := t.scope.resolveExpression(t.expression)
			if err != nil {
				return fmt.Errorf("materializing tag %q: %w", t.name, err)
			}
			t.objects = resolved.Clone()
			t.expression = ""
			t.idOrExprDone = false
		} else {
			t.objects = objectset.New()
		}
	}
	t.objects.Add(value)
	return nil
}

// compositionKey returns the text this tag contributes when embedded
// in a composed expression: the identifier when the tag is named,
// otherwise the expression, parenthesized unless it is a single
// alphanumeric run or already fully enclosed. The parentheses keep the
// embedded expression's grouping intact inside the larger one.
func (t *Tag) compositionKey() (string, error) {
	if t.idOrExprDone {
		return t.idOrExpr, nil
	}
	key := t.Identifier()
	if key == "" {
		e := t.expression
		if e == "" {
			return "", fmt.Errorf("tag has neither a name nor an expression")
		}
		if !isAlnum(e) && !parenEnclosed(e) {
			e = "(" + e + ")"
		}
		key = e
	}
	t.idOrExpr = key
	t.idOrExprDone = true
	return key, nil
}

// isAlnum reports whether s is a non-empty run of ASCII letters and
// digits.
func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// parenEnclosed reports whether s is wrapped in one balanced pair of
// parentheses. "(a | b)" qualifies; "(a) | (b)" does not.
func parenEnclosed(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 && i < len(s)-1 {
			return false
		}
	}
	return depth == 0
}

// Compose builds a new unnamed composite tag combining this tag with
// another using the given operator.
//
// The new tag's expression embeds each operand's identifier when it
// has one, or its parenthesized expression otherwise:
//
//	a, _ := scope.DefineObjects("a", 1, 2)
//	b, _ := scope.DefineObjects("b", 2, 3)
//	both, _ := a.Compose(expr.OpIntersect, b) // expression "a & b"
func (t *Tag) Compose(op expr.Operator, other *Tag) (*Tag, error) {
	if other == nil {
		return nil, ErrNilTag
	}
	if !op.Valid() {
		return nil, fmt.Errorf("unsupported operator %q", string(op))
	}
	left, err := t.compositionKey()
	if err != nil {
		return nil, err
	}
	right, err := other.compositionKey()
	if err != nil {
		return nil, err
	}
	return &Tag{
		scope:      t.scope,
		expression: fmt.Sprintf("%s %s %s", left, op, right),
	}, nil
}

// Intersect composes a tag matching objects present in both tags.
func (t *Tag) Intersect(other *Tag) (*Tag, error) {
	return t.Compose(expr.OpIntersect, other)
}

// Union composes a tag matching objects present in either tag.
func (t *Tag) Union(other *Tag) (*Tag, error) {
	return t.Compose(expr.OpUnion, other)
}

// Difference composes a tag matching objects in this tag but not the
// other.
func (t *Tag) Difference(other *Tag) (*Tag, error) {
	return t.Compose(expr.OpDifference, other)
}

// SymmetricDifference composes a tag matching objects in exactly one
// of the two tags.
func (t *Tag) SymmetricDifference(other *Tag) (*Tag, error) {
	return t.Compose(expr.OpSymmetricDifference, other)
}

// SortedObjects resolves the tag and returns its objects in the
// scope's deterministic order. The result is recomputed on every call
// and reflects the scope's current state.
func (t *Tag) SortedObjects() ([]any, error) {
	objects, err := t.Objects()
	if err != nil {
		return nil, err
	}
	return t.scope.SortObjects(objects)
}

// String returns the tag's name, or its expression for unnamed tags.
func (t *Tag) String() string {
	if t.name != "" {
		return t.name
	}
	return t.expression
}
