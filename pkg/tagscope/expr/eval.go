package expr

import (
	"github.com/randalmurphal/tagscope/pkg/tagscope/objectset"
)

// Resolver resolves identifiers to object sets during evaluation.
// It is the only window an expression has on the outside world.
type Resolver interface {
	// Resolve returns the object set for a tag name. The name is the
	// identifier exactly as written in the expression.
	Resolve(name string) (objectset.Set, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (objectset.Set, error)

// Resolve calls the function.
func (f ResolverFunc) Resolve(name string) (objectset.Set, error) {
	return f(name)
}

// Evaluate parses the expression and evaluates it against the resolver.
//
// Parse failures produce a *SyntaxError. Resolver errors are returned
// unchanged, so callers keep their own error types.
func Evaluate(input string, r Resolver) (objectset.Set, error) {
	node, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return Eval(node, r)
}

// Eval evaluates a parsed expression against the resolver.
func Eval(node Node, r Resolver) (objectset.Set, error) {
	switch n := node.(type) {
	case *Ident:
		return r.Resolve(n.Name)
	case *Binary:
		left, err := Eval(n.Left, r)
		if err != nil {
			return nil, err
		}
		right, err := Eval(n.Right, r)
		if err != nil {
			return nil, err
		}
		return n.Op.Apply(left, right), nil
	default:
		// The parser produces only the two node kinds above.
		panic("expr: unknown node type")
	}
}
