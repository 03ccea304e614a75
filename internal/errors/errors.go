// Package errors provides structured error types for kesu.
// Each error carries a category, a stable code and an optional hint
// so the CLI can print something actionable.
//
//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

// Category represents the classification of an error.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"
	CategoryScan       Category = "scan"
	CategoryDelete     Category = "delete"
	CategoryLock       Category = "lock"
	CategoryUI         Category = "ui"
)

// Code represents a machine-readable error code.
type Code string

const (
	// Config errors (E2xx)
	CodeConfigParse      Code = "E201"
	CodeValidationFailed Code = "E202"

	// Filesystem errors (E3xx)
	CodeScanFailed   Code = "E301"
	CodeDeleteFailed Code = "E302"

	// UI errors (E4xx)
	CodeEventQueueClosed Code = "E401"

	// Lock errors (E5xx)
	CodeLockError Code = "E501"
	CodeLocked    Code = "E502"
)

// Error is the base error type for kesu.
type Error struct {
	// Category classifies the error type.
	Category Category `json:"category"`

	// Code is a machine-readable error code.
	Code Code `json:"code,omitempty"`

	// Message is a short description of the error.
	Message string `json:"message"`

	// Details contains additional context information.
	Details map[string]any `json:"details,omitempty"`

	// Hint provides actionable advice for the user.
	Hint string `json:"hint,omitempty"`

	// Cause is the underlying error.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target error matches this error.
// It matches if the target is an *Error with the same Code (if both have codes).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Code != "" && t.Code != "" {
		return e.Code == t.Code
	}
	return e.Category == t.Category && e.Message == t.Message
}

// WithCode sets the code and returns the error for chaining.
func (e *Error) WithCode(code Code) *Error {
	e.Code = code
	return e
}

// WithHint sets the hint and returns the error for chaining.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// WithDetail adds a detail and returns the error for chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error with the given category and message.
func New(category Category, message string) *Error {
	return &Error{
		Category: category,
		Message:  message,
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(category Category, message string, cause error) *Error {
	return &Error{
		Category: category,
		Message:  message,
		Cause:    cause,
	}
}
