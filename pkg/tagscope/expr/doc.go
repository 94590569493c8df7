/*
Package expr parses and evaluates tag expressions.

# Overview

expr implements the small set-algebra language used to combine tags. An
expression names tags and combines their object sets with four binary
operators. Evaluation resolves every identifier through a Resolver, so
the language has no access to anything except the tags the caller
exposes. There are no literals, no function calls and no assignment;
this is a hard property of the design, not a missing feature.

# Expression Syntax

	<expr> := <term> (('&' | '|' | '-' | '^') <term>)*
	<term> := IDENTIFIER | '(' <expr> ')'

All four operators share one precedence level and associate left to
right. Parentheses group explicitly.

# Operators

	&   Intersection: objects present in both operands
	|   Union: objects present in either operand
	-   Difference: objects in the left operand but not the right
	^   Symmetric difference: objects in exactly one operand

# Identifiers

An identifier is a run of ASCII letters, digits and underscores. It is
passed verbatim to the Resolver, which owns any normalization (the
tagging engine collapses "Foo_Bar" and "foobar" onto the same tag).

# Errors

Malformed input produces a *SyntaxError carrying the byte offset of the
failure; errors.Is(err, ErrSyntax) matches all of them. Resolver errors
pass through Evaluate unchanged, so callers can detect their own
failure types (for example an empty-tag error) with errors.As.

# Examples

	production & database        // objects tagged with both
	all - retired                // everything except retired objects
	(web | api) & critical       // grouped union, then intersection
*/
package expr
