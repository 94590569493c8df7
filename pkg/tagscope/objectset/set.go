// Package objectset implements the set algebra the tagging engine is
// built on. A Set holds opaque comparable values; the four binary
// operations mirror the expression operators '&', '|', '-' and '^'.
package objectset

// Set is an unordered collection of opaque comparable values.
// The zero value is not usable; create sets with New.
type Set map[any]struct{}

// New creates a Set containing the given values.
func New(values ...any) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// FromSlice creates a Set from a slice of values.
func FromSlice(values []any) Set {
	return New(values...)
}

// Add inserts a value into the set.
func (s Set) Add(value any) {
	s[value] = struct{}{}
}

// Contains reports whether the set holds the given value.
func (s Set) Contains(value any) bool {
	_, ok := s[value]
	return ok
}

// Len returns the number of values in the set.
func (s Set) Len() int {
	return len(s)
}

// Clone returns a shallow copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// Values returns the set members as a slice. The order is not
// guaranteed.
func (s Set) Values() []any {
	out := make([]any, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	return out
}

// Merge adds every value of other to the set in place.
func (s Set) Merge(other Set) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Union returns a new set with the values present in either set.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for v := range s {
		out[v] = struct{}{}
	}
	for v := range other {
		out[v] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the values present in both sets.
func (s Set) Intersect(other Set) Set {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(Set)
	for v := range small {
		if _, ok := large[v]; ok {
			out[v] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set with the values present in s but not in
// other.
func (s Set) Difference(other Set) Set {
	out := make(Set)
	for v := range s {
		if _, ok := other[v]; !ok {
			out[v] = struct{}{}
		}
	}
	return out
}

// SymmetricDifference returns a new set with the values present in
// exactly one of the two sets.
func (s Set) SymmetricDifference(other Set) Set {
	out := make(Set)
	for v := range s {
		if _, ok := other[v]; !ok {
			out[v] = struct{}{}
		}
	}
	for v := range other {
		if _, ok := s[v]; !ok {
			out[v] = struct{}{}
		}
	}
	return out
}

// Equal reports whether both sets hold exactly the same values.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if _, ok := other[v]; !ok {
			return false
		}
	}
	return true
}
