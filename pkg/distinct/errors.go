package distinct

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single failure class of this package: no sequence
// was supplied, or the supplied sequence was empty.
var ErrInvalidInput = errors.New("invalid input")

// Reason tells a missing input apart from an empty one. Both are the same
// failure class; Reason is informational.
type Reason int

const (
	ReasonMissing Reason = iota + 1
	ReasonEmpty
)

func (r Reason) String() string {
	switch r {
	case ReasonMissing:
		return "missing"
	case ReasonEmpty:
		return "empty"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// InputError is returned by Check and by Builder.Normalize when input is
// required but invalid.
type InputError struct {
	Reason Reason
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: sequence is %s", ErrInvalidInput, e.Reason)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
