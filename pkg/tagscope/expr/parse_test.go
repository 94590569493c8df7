package expr

import (
	"errors"
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string // canonical rendering via Node.String()
	}{
		{"single identifier", "a", "a"},
		{"identifier with digits", "server42", "server42"},
		{"identifier with underscore", "_42", "_42"},
		{"union", "a | b", "a | b"},
		{"intersection", "a & b", "a & b"},
		{"difference", "a - b", "a - b"},
		{"symmetric difference", "a ^ b", "a ^ b"},
		{"no whitespace", "a|b", "a | b"},
		{"extra whitespace", "  a   |   b  ", "a | b"},
		{"left associative chain", "a | b | c", "(a | b) | c"},
		{"mixed operators stay left associative", "a | b & c", "(a | b) & c"},
		{"parentheses respected", "a | (b & c)", "a | (b & c)"},
		{"redundant parentheses collapse", "(a)", "a"},
		{"nested parentheses", "((a | b))", "a | b"},
		{"grouped both sides", "(a | b) | (c & d)", "(a | b) | (c & d)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(tt.expr)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.expr, err)
			}
			if got := node.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"trailing operator", "all - "},
		{"leading operator", "| a"},
		{"double operator", "a | | b"},
		{"unbalanced open paren", "(a | b"},
		{"unbalanced close paren", "a | b)"},
		{"empty parens", "()"},
		{"adjacent identifiers", "a b"},
		{"unexpected character", "a @ b"},
		{"quoted string rejected", "'a' | b"},
		{"dotted name rejected", "a.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.expr)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want syntax error", tt.expr)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) error %v does not match ErrSyntax", tt.expr, err)
			}
			var synErr *SyntaxError
			if !errors.As(err, &synErr) {
				t.Fatalf("Parse(%q) error %v is not a *SyntaxError", tt.expr, err)
			}
			if synErr.Input != tt.expr {
				t.Errorf("SyntaxError.Input = %q, want %q", synErr.Input, tt.expr)
			}
		})
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := Parse("ab @ cd")
	var synErr *SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("expected *SyntaxError, got %v", err)
	}
	if synErr.Pos != 3 {
		t.Errorf("SyntaxError.Pos = %d, want 3", synErr.Pos)
	}
}

func TestOperator_Valid(t *testing.T) {
	for _, op := range []Operator{OpIntersect, OpUnion, OpDifference, OpSymmetricDifference} {
		if !op.Valid() {
			t.Errorf("Operator(%q).Valid() = false, want true", op)
		}
	}
	for _, op := range []Operator{"", "+", "&&", "and"} {
		if Operator(op).Valid() {
			t.Errorf("Operator(%q).Valid() = true, want false", op)
		}
	}
}
