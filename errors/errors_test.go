package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError_Error(t *testing.T) {
	err := &ConfigError{
		Message:    "Something broke.",
		Details:    "the gory details",
		Suggestion: "Try turning it off and on again.",
	}

	msg := err.Error()
	if !strings.Contains(msg, "Something broke.") {
		t.Errorf("message missing from %q", msg)
	}
	if !strings.Contains(msg, "the gory details") {
		t.Errorf("details missing from %q", msg)
	}
	if !strings.Contains(msg, "Try turning it off") {
		t.Errorf("suggestion missing from %q", msg)
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &ConfigError{Err: inner, Message: "outer"}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should reach the wrapped error")
	}
}

func TestNewCodecUnavailableError(t *testing.T) {
	err := NewCodecUnavailableError("YAML")

	if !IsCodecUnavailable(err) {
		t.Error("IsCodecUnavailable() = false, want true")
	}

	msg := err.Error()
	if !strings.Contains(msg, "YAML") {
		t.Errorf("error should name the missing codec: %q", msg)
	}
	if !strings.Contains(msg, "go get gopkg.in/yaml.v3") {
		t.Errorf("error should carry remediation guidance: %q", msg)
	}
}

func TestFileError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewFileError("write", "/etc/app/settings.yaml", cause)

	if !IsFileError(err) {
		t.Error("IsFileError() = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("FileError should unwrap to its cause")
	}

	msg := err.Error()
	if !strings.Contains(msg, "write") || !strings.Contains(msg, "/etc/app/settings.yaml") {
		t.Errorf("FileError message missing op or path: %q", msg)
	}
}

func TestFileError_Wrapped(t *testing.T) {
	err := fmt.Errorf("loading settings: %w", NewFileError("decode", "x.yaml", errors.New("bad yaml")))

	if !IsFileError(err) {
		t.Error("IsFileError should see through wrapping")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("profile.default", "local", "only valid in project scope")

	if !IsValidationError(err) {
		t.Error("IsValidationError() = false, want true")
	}

	msg := err.Error()
	if !strings.Contains(msg, "profile.default") || !strings.Contains(msg, "local") {
		t.Errorf("ValidationError message missing field or scope: %q", msg)
	}
}

func TestIsConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"base", NewCodecUnavailableError("YAML"), true},
		{"file", NewFileError("read", "a.yaml", errors.New("io")), true},
		{"validation", NewValidationError("f", "user", "nope"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfigError(tt.err); got != tt.want {
				t.Errorf("IsConfigError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPredicates_Nil(t *testing.T) {
	if IsFileError(nil) || IsValidationError(nil) || IsCodecUnavailable(nil) {
		t.Error("predicates must be false for nil")
	}
}
