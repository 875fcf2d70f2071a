package types

import (
	"errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := NewError(ErrTimeout, "stage timed out").WithStage("flight_search")
	if err.Error() != "[TIMEOUT] stage timed out" {
		t.Errorf("unexpected error string: %s", err.Error())
	}

	cause := errors.New("dial tcp: i/o timeout")
	wrapped := NewError(ErrUpstreamError, "search failed").WithCause(cause)
	if !errors.Is(wrapped, cause) {
		t.Error("expected wrapped error to unwrap to cause")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(NewError(ErrInvalidRequest, "missing origin")) {
		t.Error("INVALID_REQUEST should be a validation error")
	}
	if !IsValidation(NewError(ErrInvalidVibe, "bad vibe")) {
		t.Error("INVALID_VIBE should be a validation error")
	}
	if IsValidation(NewError(ErrTimeout, "timed out")) {
		t.Error("TIMEOUT must not be a validation error")
	}
	if IsValidation(errors.New("plain")) {
		t.Error("plain errors are not validation errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(NewError(ErrAgentNotReady, "nil agent")); code != ErrAgentNotReady {
		t.Errorf("expected AGENT_NOT_READY, got %s", code)
	}
	if code := GetErrorCode(errors.New("plain")); code != "" {
		t.Errorf("expected empty code, got %s", code)
	}
}
