package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnsupportedMarker, "unable to handle marker: %q", "h")

	if err.Code != ErrCodeUnsupportedMarker {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeUnsupportedMarker)
	}
	if err.Message != `unable to handle marker: "h"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestError_Error(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad input")
	want := "INVALID_INPUT: bad input"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := Wrap(ErrCodeDegeneratePath, stderrors.New("division by zero"), "sketch filter failed")
	want = "DEGENERATE_PATH: sketch filter failed: division by zero"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeUnsupportedBaseline, "baseline not supported")

	if !Is(err, ErrCodeUnsupportedBaseline) {
		t.Error("Is() = false, want true for matching code")
	}
	if Is(err, ErrCodeUnsupportedCapStyle) {
		t.Error("Is() = true, want false for different code")
	}
	if Is(stderrors.New("plain"), ErrCodeUnsupportedBaseline) {
		t.Error("Is() = true, want false for plain error")
	}
}

func TestIs_WrappedChain(t *testing.T) {
	inner := New(ErrCodeDegeneratePath, "all points coincide")
	outer := fmt.Errorf("converting line 3: %w", inner)

	if !Is(outer, ErrCodeDegeneratePath) {
		t.Error("Is() = false, want true for code inside wrapped chain")
	}
}

func TestGetCode(t *testing.T) {
	err := New(ErrCodeInvalidColor, "bad color")
	if got := GetCode(err); got != ErrCodeInvalidColor {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidColor)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeUnsupportedCapStyle, "unknown cap style")
	if got := UserMessage(err); got != "unknown cap style" {
		t.Errorf("UserMessage() = %q, want %q", got, "unknown cap style")
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeInternal, cause, "wrapping")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is() = false, want true for wrapped cause")
	}
}
