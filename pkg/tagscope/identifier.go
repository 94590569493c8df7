package tagscope

import "github.com/randalmurphal/tagscope/pkg/tagscope/ident"

// GenerateIdentifier converts a user provided string into an
// identifier. With normalized true the canonical form is returned
// (punctuation removed entirely, suitable for comparison); with
// normalized false runs of punctuation become single underscores,
// preserving readability.
//
// This is the normalization applied to tag names: two names address
// the same tag exactly when their canonical forms are equal.
//
// Fails with ident.ErrEmptyIdentifier when nothing remains of the
// input.
func GenerateIdentifier(value string, normalized bool) (string, error) {
	return ident.Generate(value, normalized)
}
