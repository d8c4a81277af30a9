// Package extraction builds category-specific prompts, invokes the structured
// extraction capability, and coerces its output into canonical records.
package extraction

import (
	"fmt"
	"strings"
)

// TransportError represents an unreachable or throttled extraction capability.
// Callers may retry with backoff; the adapter itself never retries.
type TransportError struct {
	Message string
	Cause   error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction transport error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction transport error: %s", e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// SchemaError represents capability output that cannot be coerced into the
// declared shape even after per-field repair. Not retryable: the same input
// yields the same failure.
type SchemaError struct {
	Category string
	Fields   []string
	Cause    error
}

func (e *SchemaError) Error() string {
	msg := fmt.Sprintf("schema violation in %s extraction", e.Category)
	if len(e.Fields) > 0 {
		msg += fmt.Sprintf(" (fields: %s)", strings.Join(e.Fields, ", "))
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// EmptyInputError represents acquired text too short to extract anything from.
// Failing fast here avoids spending capability quota on degenerate input.
type EmptyInputError struct {
	Length int
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("input text too short for extraction: %d characters (minimum %d)", e.Length, MinUsefulLength)
}
