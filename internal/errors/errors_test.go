package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	cause := stderrors.New("open shaders/final.fsh: no such file")
	err := New(IOFailure, "failed to read source", cause)

	msg := err.Error()
	if !strings.Contains(msg, "IO_FAILURE") {
		t.Errorf("expected code in message, got %q", msg)
	}
	if !strings.Contains(msg, "no such file") {
		t.Errorf("expected cause in message, got %q", msg)
	}

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
}

func TestErrorWithoutCause(t *testing.T) {
	err := Newf(PositionOutOfRange, "line %d out of range", 42)
	if err.Unwrap() != nil {
		t.Error("expected nil cause")
	}
	if !strings.Contains(err.Error(), "line 42") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		if code := CodeOf(New(ParseFailure, "bad tree", nil)); code != ParseFailure {
			t.Errorf("CodeOf = %s, want %s", code, ParseFailure)
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		wrapped := fmt.Errorf("request failed: %w", New(QueryCompileFailure, "pattern", nil))
		if code := CodeOf(wrapped); code != QueryCompileFailure {
			t.Errorf("CodeOf = %s, want %s", code, QueryCompileFailure)
		}
	})

	t.Run("foreign error", func(t *testing.T) {
		if code := CodeOf(stderrors.New("plain")); code != InternalError {
			t.Errorf("CodeOf = %s, want %s", code, InternalError)
		}
	})
}
