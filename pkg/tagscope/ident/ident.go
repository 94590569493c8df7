// Package ident generates safe identifiers from user provided strings.
//
// Tag names come straight from callers and can contain anything:
// spaces, punctuation, mixed case. The engine needs two forms of each
// name: a collapsed form used as a registry key (so that "Foo Bar" and
// "foo-bar" collide on purpose) and a readable form with underscores
// that is attached to the tag for display.
package ident

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyIdentifier indicates nothing remained of the input after
// normalization.
var ErrEmptyIdentifier = errors.New("nothing remains after normalization")

// NormalizationError reports the input that normalized to an empty string.
type NormalizationError struct {
	// Input is the original user provided string.
	Input string
}

// Error implements the error interface.
func (e *NormalizationError) Error() string {
	return fmt.Sprintf("cannot generate identifier from %q: nothing remains after normalization", e.Input)
}

// Unwrap returns ErrEmptyIdentifier for errors.Is support.
func (e *NormalizationError) Unwrap() error {
	return ErrEmptyIdentifier
}

// Generate converts a user provided string into an identifier.
//
// The input is lower-cased and every run of characters outside [a-z0-9]
// is replaced: with nothing when normalized is true (canonical form,
// suitable for map keys and comparison) or with a single underscore when
// normalized is false (readable form). Leading and trailing underscores
// are stripped. Identifiers never start with a digit; an underscore is
// prepended when they would.
//
//	Generate("Any user-defined string", false) == "any_user_defined_string"
//	Generate("Any user-defined string", true)  == "anyuserdefinedstring"
//	Generate("42", false)                      == "_42"
//
// Returns a *NormalizationError when nothing remains of the input.
func Generate(value string, normalized bool) (string, error) {
	var b strings.Builder
	b.Grow(len(value))

	inRun := false
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			inRun = false
			continue
		}
		// Each maximal run of disallowed characters becomes a single
		// underscore in the readable form, or nothing in the
		// canonical form.
		if !normalized && !inRun {
			b.WriteByte('_')
		}
		inRun = true
	}

	result := strings.Trim(b.String(), "_")
	if result == "" {
		return "", &NormalizationError{Input: value}
	}
	if result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result, nil
}
