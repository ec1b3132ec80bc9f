// Package values converts raw input tokens into typed sequences and runs
// them through the normalizer.
package values

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/mibar/distinct/internal/input"
	"github.com/mibar/distinct/pkg/distinct"
)

// Kind selects the element type, and with it the natural order.
type Kind string

const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindFloat  Kind = "float"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindString, KindInt, KindFloat:
		return k, nil
	}
	return "", fmt.Errorf("unknown value type %q (expected \"string\", \"int\" or \"float\")", s)
}

// ParseError is returned when a token cannot be converted to the requested Kind.
type ParseError struct {
	Token input.Token
	Kind  Kind
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %q is not a valid %s: %v", e.Token.Source, e.Token.Line, e.Token.Text, e.Kind, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	errNaN = errors.New("NaN has no place in an ordering")
	errInf = errors.New("infinite values cannot be encoded by every output format")
)

// Normalize types tokens as kind and returns their distinct values in
// ascending order. Nil tokens mean no input was supplied at all.
//
// When require is set, missing or empty input fails with an error matching
// distinct.ErrInvalidInput. All conversion failures are joined into a single
// error and nothing is normalized.
func Normalize(kind Kind, tokens []input.Token, require bool) ([]any, error) {
	switch kind {
	case KindString:
		return normalize(kind, tokens, require, func(s string) (string, error) { return s, nil })
	case KindInt:
		return normalize(kind, tokens, require, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
	case KindFloat:
		return normalize(kind, tokens, require, parseFloat)
	}
	return nil, fmt.Errorf("unknown value type %q", kind)
}

func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) {
		return 0, errNaN
	}
	if math.IsInf(f, 0) {
		return 0, errInf
	}
	return f, nil
}

func normalize[T constraints.Ordered](kind Kind, tokens []input.Token, require bool, parse func(string) (T, error)) ([]any, error) {
	var (
		vals []T
		errs []error
	)
	if tokens != nil {
		vals = make([]T, 0, len(tokens))
	}
	for _, tok := range tokens {
		v, err := parse(tok.Text)
		if err != nil {
			errs = append(errs, &ParseError{Token: tok, Kind: kind, Err: err})
			continue
		}
		vals = append(vals, v)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	b := distinct.From(vals)
	if require {
		b.RequireInput()
	}
	out, err := b.Normalize()
	if err != nil {
		return nil, err
	}

	res := make([]any, len(out))
	for i, v := range out {
		res[i] = v
	}
	return res, nil
}
