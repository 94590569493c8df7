package tagscope

import (
	"errors"
	"fmt"
)

// Sentinel errors for tag definition and composition.
var (
	// ErrUnsupportedValue indicates Define() was given a value that is
	// neither an expression string nor a collection of objects.
	ErrUnsupportedValue = errors.New("unsupported tag value")

	// ErrNilTag indicates a composition method was called with a nil tag.
	ErrNilTag = errors.New("cannot compose with nil tag")

	// ErrReservedTag indicates an attempt to store objects directly on
	// the default tag, whose value is always computed.
	ErrReservedTag = errors.New("objects cannot be stored on the default tag")
)

// Sentinel errors for expression evaluation.
var (
	// ErrEmptyTag indicates an expression referenced a tag with no objects.
	ErrEmptyTag = errors.New("tag matches no objects")

	// ErrCycle indicates composite tag expressions reference each other.
	ErrCycle = errors.New("cyclic tag expression")

	// ErrNotComparable indicates a result set mixes values with no
	// common ordering.
	ErrNotComparable = errors.New("objects are not mutually comparable")
)

// EmptyTagError reports which tag resolved to an empty object set
// during expression evaluation.
//
// An expression referencing a tag with no members is almost always a
// caller mistake (a typo or an unpopulated tag), so resolution fails
// fast instead of propagating an empty set. A composed result that
// happens to be empty is not an error; emptiness is only checked when
// a name is resolved.
type EmptyTagError struct {
	// Name is the tag name as written in the expression.
	Name string
}

// Error implements the error interface.
func (e *EmptyTagError) Error() string {
	return fmt.Sprintf("the tag %q doesn't match anything", e.Name)
}

// Unwrap returns ErrEmptyTag for errors.Is support.
func (e *EmptyTagError) Unwrap() error {
	return ErrEmptyTag
}

// UnsupportedValueError reports the value kind Define() rejected.
type UnsupportedValueError struct {
	// Name is the tag the definition was for.
	Name string
	// Value is the rejected value.
	Value any
}

// Error implements the error interface.
func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported value for tag %q: %T", e.Name, e.Value)
}

// Unwrap returns ErrUnsupportedValue for errors.Is support.
func (e *UnsupportedValueError) Unwrap() error {
	return ErrUnsupportedValue
}

// CycleError reports a tag whose expression ends up referencing itself.
type CycleError struct {
	// Name is the tag that was re-entered during resolution.
	Name string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("the tag %q is defined in terms of itself", e.Name)
}

// Unwrap returns ErrCycle for errors.Is support.
func (e *CycleError) Unwrap() error {
	return ErrCycle
}

// NotComparableError reports two result values with no common ordering.
type NotComparableError struct {
	// Left and Right are representatives of the incompatible values.
	Left  any
	Right any
}

// Error implements the error interface.
func (e *NotComparableError) Error() string {
	return fmt.Sprintf("cannot order %T against %T", e.Left, e.Right)
}

// Unwrap returns ErrNotComparable for errors.Is support.
func (e *NotComparableError) Unwrap() error {
	return ErrNotComparable
}
