package expr

import (
	"fmt"

	"github.com/randalmurphal/tagscope/pkg/tagscope/objectset"
)

// Operator is one of the four binary set operators.
type Operator string

// The supported operators. They map one-to-one onto set algebra.
const (
	OpIntersect           Operator = "&"
	OpUnion               Operator = "|"
	OpDifference          Operator = "-"
	OpSymmetricDifference Operator = "^"
)

// Valid reports whether op is one of the supported operators.
func (op Operator) Valid() bool {
	switch op {
	case OpIntersect, OpUnion, OpDifference, OpSymmetricDifference:
		return true
	}
	return false
}

// Apply combines two object sets with the operator.
// Panics on an invalid operator; the parser only produces valid ones.
func (op Operator) Apply(left, right objectset.Set) objectset.Set {
	switch op {
	case OpIntersect:
		return left.Intersect(right)
	case OpUnion:
		return left.Union(right)
	case OpDifference:
		return left.Difference(right)
	case OpSymmetricDifference:
		return left.SymmetricDifference(right)
	default:
		panic(fmt.Sprintf("expr: invalid operator %q", string(op)))
	}
}

// Node is a parsed expression tree.
type Node interface {
	// String renders the node back to expression text.
	String() string
}

// Ident is a tag name reference.
type Ident struct {
	// Name is the identifier exactly as written.
	Name string
}

// String returns the identifier text.
func (i *Ident) String() string {
	return i.Name
}

// Binary is the application of an operator to two subexpressions.
type Binary struct {
	Op    Operator
	Left  Node
	Right Node
}

// String renders the expression with explicit parentheses around
// nested operations, preserving the evaluated grouping.
func (b *Binary) String() string {
	return fmt.Sprintf("%s %s %s", operandString(b.Left), b.Op, operandString(b.Right))
}

func operandString(n Node) string {
	if inner, ok := n.(*Binary); ok {
		return "(" + inner.String() + ")"
	}
	return n.String()
}

// parser is a recursive-descent parser over the scanner's token stream.
type parser struct {
	scan scanner
	cur  token
}

// Parse parses expression text into a Node.
// Returns a *SyntaxError for malformed input.
func Parse(input string) (Node, error) {
	p := &parser{scan: scanner{input: input}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokenEOF {
		return nil, p.errorf("unexpected %s after expression", p.cur.describe())
	}
	return node, nil
}

func (p *parser) advance() error {
	tok, err := p.scan.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{
		Input: p.scan.input,
		Pos:   p.cur.pos,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// parseExpr := term (op term)*, left associative.
func (p *parser) parseExpr() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokenOperator {
		op := Operator(p.cur.text)
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseTerm := IDENT | '(' expr ')'.
func (p *parser) parseTerm() (Node, error) {
	switch p.cur.kind {
	case tokenIdent:
		node := &Ident{Name: p.cur.text}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil
	case tokenLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.cur.kind != tokenRParen {
			return nil, p.errorf("expected ')', got %s", p.cur.describe())
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, p.errorf("expected tag name or '(', got %s", p.cur.describe())
	}
}
