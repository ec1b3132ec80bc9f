package distinct

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	if err := Check([]string{"x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Check[string](nil)
	var ie *InputError
	if !errors.As(err, &ie) {
		t.Fatalf("expected *InputError, got %v", err)
	}
	if ie.Reason != ReasonMissing {
		t.Errorf("got reason %v, want missing", ie.Reason)
	}

	err = Check([]string{})
	if !errors.As(err, &ie) || ie.Reason != ReasonEmpty {
		t.Fatalf("expected empty InputError, got %v", err)
	}
}

func TestInputErrorMatchesSentinel(t *testing.T) {
	for _, err := range []error{Check[int](nil), Check([]int{})} {
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("expected %v to match ErrInvalidInput", err)
		}
	}
}

func TestInputErrorMessage(t *testing.T) {
	err := &InputError{Reason: ReasonEmpty}
	if got, want := err.Error(), "invalid input: sequence is empty"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReasonString(t *testing.T) {
	if got := ReasonMissing.String(); got != "missing" {
		t.Errorf("got %q", got)
	}
	if got := Reason(9).String(); got != "Reason(9)" {
		t.Errorf("got %q", got)
	}
}
