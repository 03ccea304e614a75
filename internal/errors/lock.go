//nolint:revive // Package name intentionally shadows stdlib errors for convenience.
package errors

import "fmt"

// LockError represents a failure to take the per-root lock.
type LockError struct {
	Base Error `json:"error"`

	// Root is the directory the lock protects.
	Root string `json:"root,omitempty"`

	// LockPID is the PID of the process holding the lock (if known).
	LockPID int `json:"lockPid,omitempty"`

	// LockFile is the path to the lock file.
	LockFile string `json:"lockFile,omitempty"`
}

// NewLockFileError creates a LockError for lock file I/O failures.
func NewLockFileError(lockFile string, cause error) *LockError {
	return &LockError{
		Base: Error{
			Category: CategoryLock,
			Code:     CodeLockError,
			Message:  "failed to acquire lock",
			Cause:    cause,
		},
		LockFile: lockFile,
	}
}

// NewLockError creates a LockError for a root already held by another process.
func NewLockError(root, lockFile string, lockPID int) *LockError {
	hint := fmt.Sprintf("Wait for the other process to finish, or\nrun 'rm %s' if it's stale.", lockFile)
	return &LockError{
		Base: Error{
			Category: CategoryLock,
			Code:     CodeLocked,
			Message:  fmt.Sprintf("%s is locked", root),
			Hint:     hint,
		},
		Root:     root,
		LockPID:  lockPID,
		LockFile: lockFile,
	}
}

// Error implements the error interface.
func (e *LockError) Error() string {
	return e.Base.Error()
}

// Unwrap returns the underlying error.
func (e *LockError) Unwrap() error {
	return e.Base.Cause
}

// Is reports whether the target error matches this error by code.
func (e *LockError) Is(target error) bool {
	t, ok := target.(*LockError)
	if !ok {
		return false
	}
	return e.Base.Code == t.Base.Code
}
