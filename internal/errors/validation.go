//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// ValidationError represents a configuration value outside its allowed range.
type ValidationError struct {
	Base Error `json:"error"`

	// Field is the dotted path of the offending key, e.g. "scan.parallelism".
	Field string `json:"field,omitempty"`

	// Expected describes what was expected.
	Expected string `json:"expected,omitempty"`

	// Got describes what was received.
	Got string `json:"got,omitempty"`
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, expected, got string) *ValidationError {
	return &ValidationError{
		Base: Error{
			Category: CategoryValidation,
			Code:     CodeValidationFailed,
			Message:  fmt.Sprintf("invalid value for %s", field),
		},
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
