package errcode

import (
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":             OK,
		"invalid_params": InvalidParams,
		"unknown_pin":    UnknownPin,
		"pin_in_use":     PinInUse,
		"unknown_bus":    UnknownBus,
		"io_error":       IOError,
		"bringup_failed": BringupFailed,
		"error":          Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf(t *testing.T) {
	if got := Of(nil); got != OK {
		t.Fatalf("Of(nil) = %q", got)
	}
	if got := Of(PinInUse); got != PinInUse {
		t.Fatalf("Of(code) = %q", got)
	}
	if got := Of(errors.New("boom")); got != Error {
		t.Fatalf("Of(plain) = %q", got)
	}

	// The outer code wins over the cause.
	err := Wrap(BringupFailed, "claim advance", UnknownPin)
	if got := Of(err); got != BringupFailed {
		t.Fatalf("Of(wrapped) = %q", got)
	}
	if !errors.Is(err, UnknownPin) {
		t.Fatal("wrapped error lost its cause")
	}
}

func TestEMessage(t *testing.T) {
	err := &E{C: BringupFailed, Op: "claim led3", Err: PinInUse}
	if got, want := err.Error(), "bringup_failed [claim led3]: pin_in_use"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
	if Wrap(IOError, "x", nil) != nil {
		t.Fatal("Wrap(nil) must be nil")
	}
}
