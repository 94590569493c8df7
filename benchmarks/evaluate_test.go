package benchmarks

import (
	"context"
	"fmt"
	"testing"

	"github.com/randalmurphal/tagscope/pkg/tagscope"
)

// buildScope tags n objects across a handful of overlapping tags.
func buildScope(b *testing.B, n int) *tagscope.Scope {
	b.Helper()
	scope := tagscope.NewScope()
	for i := 0; i < n; i++ {
		tags := []string{"fleet"}
		if i%2 == 0 {
			tags = append(tags, "web")
		}
		if i%3 == 0 {
			tags = append(tags, "database")
		}
		if i%5 == 0 {
			tags = append(tags, "production")
		}
		if err := scope.AddObject(fmt.Sprintf("server-%d", i), tags...); err != nil {
			b.Fatal(err)
		}
	}
	return scope
}

// BenchmarkAddObject measures single-object tagging overhead.
func BenchmarkAddObject(b *testing.B) {
	scope := tagscope.NewScope()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = scope.AddObject(i, "web", "production")
	}
}

// BenchmarkEvaluate_100 evaluates an intersection over 100 objects.
func BenchmarkEvaluate_100(b *testing.B) {
	benchmarkEvaluate(b, 100, "web & database")
}

// BenchmarkEvaluate_1000 evaluates an intersection over 1000 objects.
func BenchmarkEvaluate_1000(b *testing.B) {
	benchmarkEvaluate(b, 1000, "web & database")
}

// BenchmarkEvaluate_10000 evaluates an intersection over 10000 objects.
func BenchmarkEvaluate_10000(b *testing.B) {
	benchmarkEvaluate(b, 10000, "web & database")
}

// BenchmarkEvaluate_Complex evaluates a parenthesized expression with
// all four operators.
func BenchmarkEvaluate_Complex(b *testing.B) {
	benchmarkEvaluate(b, 1000, "(web | database) - (production ^ web) & fleet")
}

// BenchmarkEvaluate_DefaultTag evaluates the built-in union tag.
func BenchmarkEvaluate_DefaultTag(b *testing.B) {
	benchmarkEvaluate(b, 1000, "all - production")
}

func benchmarkEvaluate(b *testing.B, n int, expression string) {
	scope := buildScope(b, n)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := scope.Evaluate(ctx, expression); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEvaluateRaw_1000 skips sorting to isolate set algebra cost.
func BenchmarkEvaluateRaw_1000(b *testing.B) {
	scope := buildScope(b, 1000)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := scope.EvaluateRaw(ctx, "web & database"); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompositeTag_1000 reads a composite tag, which re-evaluates
// its expression on every access.
func BenchmarkCompositeTag_1000(b *testing.B) {
	scope := buildScope(b, 1000)
	tag, err := scope.DefineExpression("critical", "web & database & production")
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tag.Objects(); err != nil {
			b.Fatal(err)
		}
	}
}
