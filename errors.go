package formatvalidate

import (
	"fmt"
	"strings"
)

// Error codes for configuration failures. Rule failures reported by
// Controller.Validate use the rule's marker class name as the code.
const (
	ErrCodeUnknownKey  = "unknown_key"
	ErrCodeUnknownRule = "unknown_rule"
	ErrCodeInvalidType = "invalid_type"
)

// ValidationError aggregates field-level failures.
type ValidationError struct {
	FieldErrors []FieldError
}

// Error formats failures as a multi-line message.
func (e *ValidationError) Error() string {
	if len(e.FieldErrors) == 0 {
		return "validation failed: no errors"
	}

	var b strings.Builder
	if len(e.FieldErrors) == 1 {
		b.WriteString("validation failed: 1 error\n")
	} else {
		fmt.Fprintf(&b, "validation failed: %d errors\n", len(e.FieldErrors))
	}

	for _, fe := range e.FieldErrors {
		fmt.Fprintf(&b, "  - %s: %s (%s)\n", fe.FieldPath, fe.Code, fe.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}

// FieldError represents a single failure.
type FieldError struct {
	FieldPath string // field key or configuration key
	Code      string // error code or rule name (e.g. "fvRequired")
	Message   string
}
