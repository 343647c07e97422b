package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common configuration errors.
var (
	// ErrCodecUnavailable indicates no document codec is configured, so
	// settings files cannot be read or written.
	ErrCodecUnavailable = errors.New("document codec unavailable")
)

// ConfigError is the base configuration error. It wraps an underlying error
// with a user-friendly message and an actionable suggestion.
type ConfigError struct {
	// Err is the underlying error
	Err error

	// Message is a user-friendly description of what went wrong
	Message string

	// Suggestion is an actionable hint for the user
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewCodecUnavailableError reports that the named codec dependency is missing.
// The message tells the user how to restore read/write capability.
func NewCodecUnavailableError(codecName string) error {
	return &ConfigError{
		Err:     ErrCodecUnavailable,
		Message: fmt.Sprintf("Cannot read or write settings files: the %s codec is not available.", codecName),
		Suggestion: "Construct the store with an explicit codec, e.g. store.New(paths, store.WithCodec(store.YAMLCodec{})),\n" +
			"or add the YAML codec dependency to your module: go get gopkg.in/yaml.v3",
	}
}

// FileError indicates a read or write against a backing settings file failed
// for I/O or decode reasons. Missing files are not FileErrors.
type FileError struct {
	// Op is the failing operation: "read", "write", "decode", "encode", or "mkdir".
	Op string

	// Path is the backing location involved.
	Path string

	// Err is the underlying failure.
	Err error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("failed to %s settings file %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError wraps an I/O or codec failure for a settings file operation.
func NewFileError(op, path string, err error) error {
	return &FileError{Op: op, Path: path, Err: err}
}

// ValidationError indicates structurally invalid settings were submitted for
// persistence.
type ValidationError struct {
	// Field is the offending settings field, e.g. "profile.default".
	Field string

	// Scope is the name of the scope the write targeted.
	Scope string

	// Message describes the rule that was violated.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Scope != "" {
		return fmt.Sprintf("invalid settings: %s (field %s, scope %s)", e.Message, e.Field, e.Scope)
	}
	return "invalid settings: " + e.Message
}

// NewValidationError reports a structural rule violation for a field at a scope.
func NewValidationError(field, scope, message string) error {
	return &ValidationError{Field: field, Scope: scope, Message: message}
}
