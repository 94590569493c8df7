package ident_test

import (
	"errors"
	"testing"

	"github.com/randalmurphal/tagscope/pkg/tagscope/ident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate verifies identifier generation in both forms.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		normalized bool
		want       string
	}{
		{"readable form", "Some random name!", false, "some_random_name"},
		{"canonical form", "Some random name!", true, "somerandomname"},
		{"leading digit readable", "42", false, "_42"},
		{"leading digit canonical", "42", true, "_42"},
		{"already clean", "production", false, "production"},
		{"already clean canonical", "production", true, "production"},
		{"hyphenated", "foo-bar", true, "foobar"},
		{"hyphenated readable", "foo-bar", false, "foo_bar"},
		{"spaces collide with hyphens", "Foo Bar", true, "foobar"},
		{"mixed case", "WebServers", false, "webservers"},
		{"punctuation runs collapse", "a!!!b", false, "a_b"},
		{"leading punctuation stripped", "--cache--", false, "cache"},
		{"digits inside", "server2", true, "server2"},
		{"digit prefix after strip", "-2fast", false, "_2fast"},
		{"unicode treated as separator", "café au lait", false, "caf_au_lait"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ident.Generate(tt.input, tt.normalized)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestGenerate_Empty verifies that inputs with no usable characters fail.
func TestGenerate_Empty(t *testing.T) {
	for _, input := range []string{"", "!!!", "---", "   ", "__"} {
		t.Run("input "+input, func(t *testing.T) {
			_, err := ident.Generate(input, true)
			require.Error(t, err)
			assert.ErrorIs(t, err, ident.ErrEmptyIdentifier)

			var normErr *ident.NormalizationError
			require.ErrorAs(t, err, &normErr)
			assert.Equal(t, input, normErr.Input)
		})
	}
}

// TestGenerate_FormsAgreeOnFailure verifies both forms reject the same inputs.
func TestGenerate_FormsAgreeOnFailure(t *testing.T) {
	for _, input := range []string{"", "!@#$%", "日本語"} {
		_, errCanonical := ident.Generate(input, true)
		_, errReadable := ident.Generate(input, false)
		assert.Equal(t, errors.Is(errCanonical, ident.ErrEmptyIdentifier),
			errors.Is(errReadable, ident.ErrEmptyIdentifier),
			"forms disagree for %q", input)
	}
}
