package expr

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates an expression failed to parse.
var ErrSyntax = errors.New("expression syntax error")

// SyntaxError reports where and why an expression failed to parse.
type SyntaxError struct {
	// Input is the full expression text.
	Input string
	// Pos is the byte offset of the failure.
	Pos int
	// Msg describes the failure.
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error in %q at offset %d: %s", e.Input, e.Pos, e.Msg)
}

// Unwrap returns ErrSyntax for errors.Is support.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenIdent
	tokenOperator
	tokenLParen
	tokenRParen
)

// token is a single lexical element of an expression.
type token struct {
	kind tokenKind
	text string
	pos  int
}

func (t token) describe() string {
	if t.kind == tokenEOF {
		return "end of expression"
	}
	return fmt.Sprintf("%q", t.text)
}

// scanner splits expression text into tokens.
type scanner struct {
	input string
	pos   int
}

func isIdentRune(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// next returns the next token, skipping whitespace.
func (s *scanner) next() (token, error) {
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			s.pos++
			continue
		}
		break
	}
	if s.pos >= len(s.input) {
		return token{kind: tokenEOF, pos: s.pos}, nil
	}

	start := s.pos
	switch c := s.input[s.pos]; {
	case c == '(':
		s.pos++
		return token{kind: tokenLParen, text: "(", pos: start}, nil
	case c == ')':
		s.pos++
		return token{kind: tokenRParen, text: ")", pos: start}, nil
	case c == '&' || c == '|' || c == '-' || c == '^':
		s.pos++
		return token{kind: tokenOperator, text: string(c), pos: start}, nil
	case isIdentRune(c):
		for s.pos < len(s.input) && isIdentRune(s.input[s.pos]) {
			s.pos++
		}
		return token{kind: tokenIdent, text: s.input[start:s.pos], pos: start}, nil
	default:
		return token{}, &SyntaxError{
			Input: s.input,
			Pos:   start,
			Msg:   fmt.Sprintf("unexpected character %q", c),
		}
	}
}
