// Package lock prevents two kesu processes from working on the same root.
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gofrs/flock"
	kesuerrors "github.com/terassyi/kesu/internal/errors"
)

// Lock is an exclusive per-root file lock.
type Lock struct {
	root     string
	lockPath string
	fileLock *flock.Flock
	locked   bool
}

// FileName returns the lock file name for root.
func FileName(root string) string {
	return fmt.Sprintf("%016x.lock", xxhash.Sum64String(filepath.Clean(root)))
}

// New creates a Lock for root with its lock file under dir.
func New(dir, root string) (*Lock, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, kesuerrors.NewLockFileError(dir, err)
	}

	lockPath := filepath.Join(dir, FileName(root))
	return &Lock{
		root:     root,
		lockPath: lockPath,
		fileLock: flock.New(lockPath),
	}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.lockPath
}

// TryLock acquires the lock and writes the current PID to the lock file.
// It returns a LockError if another process holds the lock.
func (l *Lock) TryLock() error {
	if l.locked {
		return nil
	}

	locked, err := l.fileLock.TryLock()
	if err != nil {
		return kesuerrors.NewLockFileError(l.lockPath, err)
	}
	if !locked {
		// PID is best effort; the holder may not have written it yet
		pid, _ := l.readPID()
		return kesuerrors.NewLockError(l.root, l.lockPath, pid)
	}

	if err := l.writePID(); err != nil {
		_ = l.fileLock.Unlock()
		return kesuerrors.NewLockFileError(l.lockPath, err)
	}

	l.locked = true
	return nil
}

// Unlock releases the lock.
func (l *Lock) Unlock() error {
	if !l.locked {
		return nil
	}

	if err := l.fileLock.Unlock(); err != nil {
		return kesuerrors.NewLockFileError(l.lockPath, err)
	}

	l.locked = false
	return nil
}

func (l *Lock) readPID() (int, error) {
	data, err := os.ReadFile(l.lockPath)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

func (l *Lock) writePID() error {
	return os.WriteFile(l.lockPath, []byte(strconv.Itoa(os.Getpid())), 0644)
}
