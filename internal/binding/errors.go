package binding

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration matches every *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("configuration error")
	// ErrIllegalState matches every *IllegalStateError via errors.Is.
	ErrIllegalState = errors.New("illegal state")
)

// ConfigurationError reports an invalid or missing field while building a
// binding. It is never retryable: the mapping that produced it must be fixed.
type ConfigurationError struct {
	// Role is the attribute role (Entity.name), if known.
	Role string
	// Field names the offending input field.
	Field string
	// Reason is the human-readable description.
	Reason string
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}

	if e.Role != "" {
		msg = "[" + e.Role + "] " + msg
	}

	return "configuration error: " + msg
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// IllegalStateError signals a programming defect, such as reading an owner
// that was never registered or assembling into a sealed metamodel.
type IllegalStateError struct {
	Op     string
	Reason string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("illegal state in %s: %s", e.Op, e.Reason)
}

func (e *IllegalStateError) Is(target error) bool {
	return target == ErrIllegalState
}

func configErr(role, field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Role: role, Field: field, Reason: fmt.Sprintf(format, args...)}
}
