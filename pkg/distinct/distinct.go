// Package distinct normalizes sequences of comparable values: duplicates are
// dropped and the remaining values come back in ascending natural order.
//
// Basic usage:
//
//	out := distinct.Normalize([]int{3, 1, 2, 3, 1}) // [1 2 3]
//
// Validation is a separate predicate so callers choose how to react:
//
//	if !distinct.Validate(in) {
//		return errNothingToDo
//	}
//
// Fluent API with validation folded in:
//
//	out, err := distinct.From(in).RequireInput().Normalize()
//
// Every function allocates only call-local state, so all of them are safe for
// concurrent use with independent inputs. The returned slice never aliases the
// input.
package distinct

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/mibar/distinct/internal/set"
)

// Normalize returns the distinct values of in, sorted ascending.
// A nil or empty input yields an empty, non-nil slice.
//
// Floating-point NaNs never compare equal, so each NaN in the input survives
// and sorts before every other value.
func Normalize[T constraints.Ordered](in []T) []T {
	out := Unique(in)
	slices.Sort(out)
	return out
}

// NormalizeFunc is like Normalize but orders the result with cmp, which must
// define a total order consistent with ==. Equality is still ==.
func NormalizeFunc[T comparable](in []T, cmp func(a, b T) int) []T {
	out := Unique(in)
	slices.SortFunc(out, cmp)
	return out
}

// NormalizeSeq normalizes the values produced by seq.
func NormalizeSeq[T constraints.Ordered](seq iter.Seq[T]) []T {
	seen := set.New[T]()
	for v := range seq {
		seen.Insert(v)
	}
	out := seen.Values()
	slices.Sort(out)
	return out
}

// Unique returns the distinct values of in, in first-seen order.
func Unique[T comparable](in []T) []T {
	seen := set.WithCapacity[T](len(in))
	seen.Add(in...)
	return seen.Values()
}

// Validate reports whether in holds at least one value.
// The absence sentinel (a nil slice) and an empty slice are both invalid.
func Validate[T any](in []T) bool {
	return len(in) > 0
}

// Check is the error form of Validate. It returns nil for valid input and an
// *InputError matching ErrInvalidInput otherwise.
func Check[T any](in []T) error {
	switch {
	case in == nil:
		return &InputError{Reason: ReasonMissing}
	case len(in) == 0:
		return &InputError{Reason: ReasonEmpty}
	}
	return nil
}
