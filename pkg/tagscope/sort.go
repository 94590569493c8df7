package tagscope

import (
	"sort"

	"github.com/maruel/natural"

	"github.com/randalmurphal/tagscope/pkg/tagscope/objectset"
)

// SortObjects returns the set's members as a deterministically sorted
// slice.
//
// When every member is a string, natural order is used, so "server-2"
// sorts before "server-10". When every member is a number, numeric
// order is used. Anything else fails with *NotComparableError: there
// is no meaningful total order over mixed or opaque values.
func (s *Scope) SortObjects(objects objectset.Set) ([]any, error) {
	return sortValues(objects.Values())
}

func sortValues(values []any) ([]any, error) {
	out := make([]any, len(values))
	copy(out, values)
	if len(out) < 2 {
		return out, nil
	}

	strings := 0
	numbers := 0
	for _, v := range out {
		if _, ok := v.(string); ok {
			strings++
		} else if isNumber(v) {
			numbers++
		}
	}

	switch {
	case strings == len(out):
		sort.Slice(out, func(i, j int) bool {
			return natural.Less(out[i].(string), out[j].(string))
		})
	case numbers == len(out):
		sort.Slice(out, func(i, j int) bool {
			return toFloat64(out[i]) < toFloat64(out[j])
		})
	default:
		left, right := incomparablePair(out)
		return nil, &NotComparableError{Left: left, Right: right}
	}
	return out, nil
}

// incomparablePair picks two representative values that cannot be
// ordered against each other: the first value and the first value of a
// different kind, or the first two values when the kind itself has no
// ordering.
func incomparablePair(values []any) (any, any) {
	first := values[0]
	for _, v := range values[1:] {
		if kindOf(v) != kindOf(first) {
			return first, v
		}
	}
	return values[0], values[1]
}

type valueKind int

const (
	kindOther valueKind = iota
	kindString
	kindNumber
)

func kindOf(v any) valueKind {
	if _, ok := v.(string); ok {
		return kindString
	}
	if isNumber(v) {
		return kindNumber
	}
	return kindOther
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

func toFloat64(v any) float64 {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int8:
		return float64(val)
	case int16:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case uint:
		return float64(val)
	case uint8:
		return float64(val)
	case uint16:
		return float64(val)
	case uint32:
		return float64(val)
	case uint64:
		return float64(val)
	case float32:
		return float64(val)
	case float64:
		return val
	default:
		return 0
	}
}
