// Package errors provides structured error handling for the range input.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid configuration (bounds, step or value).
	KindConfig
	// KindGeometry indicates the track geometry was read while unmounted.
	KindGeometry
	// KindRender indicates a rendering error.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindGeometry:
		return "geometry"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// ErrNotMounted is the cause of geometry errors raised when a track is used
// before it has been attached to an element.
var ErrNotMounted = stderrors.New("track is not mounted")

// InputRangeError represents a structured error raised by the range input.
type InputRangeError struct {
	// Op is the operation that failed (e.g., "rangeinput.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *InputRangeError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *InputRangeError) Unwrap() error {
	return e.Err
}

// ConfigError describes a rejected configuration field.
type ConfigError struct {
	// Field is the offending configuration field (e.g., "Step").
	Field string
	// Value is the rejected value.
	Value any
	// Reason explains the constraint that was violated.
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// NewConfigError wraps a ConfigError for op in an InputRangeError.
func NewConfigError(op, field string, value any, reason string) *InputRangeError {
	return &InputRangeError{
		Op:        op,
		Kind:      KindConfig,
		Err:       &ConfigError{Field: field, Value: value, Reason: reason},
		Timestamp: time.Now(),
	}
}

// IsKind reports whether err is an InputRangeError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ire *InputRangeError
	if stderrors.As(err, &ire) {
		return ire.Kind == kind
	}
	return false
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "tui.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the range input.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *InputRangeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
