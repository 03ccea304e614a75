//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

// FSError represents a failure while scanning or deleting on disk.
type FSError struct {
	Base Error `json:"error"`

	// Path is the filesystem path that failed.
	Path string `json:"path,omitempty"`
}

// NewScanError creates an FSError for a path that could not be scanned.
func NewScanError(path string, cause error) *FSError {
	return &FSError{
		Base: Error{
			Category: CategoryScan,
			Code:     CodeScanFailed,
			Message:  "failed to scan directory",
			Hint:     "Check that the path exists and is a readable directory.",
			Cause:    cause,
		},
		Path: path,
	}
}

// NewDeleteError creates an FSError for an entry that could not be removed.
func NewDeleteError(path string, cause error) *FSError {
	return &FSError{
		Base: Error{
			Category: CategoryDelete,
			Code:     CodeDeleteFailed,
			Message:  "failed to delete entry",
			Cause:    cause,
		},
		Path: path,
	}
}

// Error implements the error interface.
func (e *FSError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *FSError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *FSError) Is(target error) bool {
	t, ok := target.(*FSError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
