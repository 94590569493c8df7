package benchmarks

import (
	"testing"

	"github.com/randalmurphal/tagscope/pkg/tagscope"
	"github.com/randalmurphal/tagscope/pkg/tagscope/expr"
	"github.com/randalmurphal/tagscope/pkg/tagscope/ident"
)

// BenchmarkParse_Simple parses a two-term expression.
func BenchmarkParse_Simple(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := expr.Parse("web & production"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParse_Nested parses a deeply parenthesized expression.
func BenchmarkParse_Nested(b *testing.B) {
	const input = "((a | b) & (c - d)) ^ ((e | f) & (g - h))"
	for i := 0; i < b.N; i++ {
		if _, err := expr.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIdentifier measures tag name normalization.
func BenchmarkIdentifier(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := ident.Generate("Some random name!", true); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompose measures building composite tags in code.
func BenchmarkCompose(b *testing.B) {
	scope := tagscope.NewScope()
	web, err := scope.DefineObjects("web", "s1", "s2")
	if err != nil {
		b.Fatal(err)
	}
	db, err := scope.DefineObjects("database", "s2", "s3")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := web.Intersect(db); err != nil {
			b.Fatal(err)
		}
	}
}
