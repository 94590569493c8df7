/*
Package tagscope provides simple and powerful tagging for Go values.

# Overview

tagscope associates opaque comparable values with named tags, lets
tags be defined as explicit value sets or as boolean expressions over
other tags, and evaluates such expressions into deterministically
sorted result sets. Everything happens in memory inside a Scope; there
is no persistence and no I/O.

# Basic Usage

Create a scope, tag some objects, and evaluate expressions:

	scope := tagscope.NewScope()
	scope.AddObject("server-1", "web", "production")
	scope.AddObject("server-2", "web", "staging")
	scope.AddObject("server-3", "database", "production")

	matches, err := scope.Evaluate(ctx, "web & production")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(matches) // ["server-1"]

# Defining Tags

Tags can be defined wholesale instead of one object at a time. A list
of values produces a simple tag; an expression string produces a
composite tag whose members are computed on every read:

	scope.DefineObjects("web", "server-1", "server-2")
	scope.DefineObjects("database", "server-3")
	scope.DefineExpression("critical", "web & database")

Composite tags follow later mutations of the tags they reference.
Expressions are evaluated lazily, so a composite tag may be defined
before the tags it names exist.

# Expressions

Expressions combine tag names with four set operators and parentheses:

	web & production        // intersection
	web | database          // union
	all - staging           // difference ("all" is built in)
	web ^ database          // symmetric difference

All operators share one precedence level and associate left to right;
use parentheses to group. The reserved tag "all" always resolves to
the union of every simple tag's objects.

Referencing a tag that matches nothing fails with *EmptyTagError: an
empty tag in an expression is almost always a typo. A composed result
that happens to be empty is returned normally.

# Composing Tags in Code

Tag values compose directly, producing unnamed composite tags whose
expression text preserves grouping:

	web, _ := scope.Tag("web")
	db, _ := scope.Tag("database")
	either, _ := web.Union(db)
	fmt.Println(either.Expression()) // "web | database"

# Sorting

Evaluate returns results in a deterministic order. All-string results
use natural ordering, so "server-2" sorts before "server-10". Numeric
results sort numerically. Mixing strings with numbers (or using values
with no ordering at all) fails with *NotComparableError.

# Tag Names

Names are normalized before lookup: "Foo Bar", "foo-bar" and "FooBar"
all address the same tag. A name that normalizes to nothing (for
example "!!!") fails with ident.ErrEmptyIdentifier.

# Observability

Logging, metrics, and tracing are opt-in:

	scope := tagscope.NewScope(
	    tagscope.WithLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))),
	    tagscope.WithMetrics(true),
	    tagscope.WithTracing(true))

Logs include structured fields: scope_id, eval_id, expression,
duration_ms. OpenTelemetry metrics: tagscope.evaluations,
tagscope.evaluate.latency_ms, etc. Tracing emits a tagscope.evaluate
span per top-level evaluation.

# Thread Safety

A Scope assumes a single goroutine. Share a Scope across goroutines
only behind external synchronization.

# Subpackages

  - expr: expression scanner, parser, and evaluator
  - ident: identifier normalization for tag names
  - objectset: the underlying set algebra
  - config: YAML/JSON scope definition files
  - registry: insertion-ordered generic registry
  - observability: logging, metrics, and tracing helpers
*/
package tagscope
