package lock

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kesuerrors "github.com/terassyi/kesu/internal/errors"
)

func TestFileName(t *testing.T) {
	t.Parallel()

	a := FileName("/data")
	assert.Equal(t, a, FileName("/data/"), "trailing slash is ignored")
	assert.NotEqual(t, a, FileName("/other"))
	assert.Len(t, a, len("0123456789abcdef.lock"))
}

func TestLock_LockUnlock(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	l, err := New(dir, "/data")
	require.NoError(t, err)

	require.NoError(t, l.TryLock())
	// second call on the same Lock is a no-op
	require.NoError(t, l.TryLock())

	data, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))

	require.NoError(t, l.Unlock())
	require.NoError(t, l.Unlock())
}

func TestLock_Conflict(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	first, err := New(dir, "/data")
	require.NoError(t, err)
	require.NoError(t, first.TryLock())
	t.Cleanup(func() { _ = first.Unlock() })

	second, err := New(dir, "/data")
	require.NoError(t, err)

	err = second.TryLock()
	var lockErr *kesuerrors.LockError
	require.ErrorAs(t, err, &lockErr)
	assert.Equal(t, kesuerrors.CodeLocked, lockErr.Base.Code)
	assert.Equal(t, os.Getpid(), lockErr.LockPID)
	assert.Equal(t, first.Path(), lockErr.LockFile)
	assert.Equal(t, "/data", lockErr.Root)
}

func TestLock_DifferentRoots(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	a, err := New(dir, "/data/a")
	require.NoError(t, err)
	b, err := New(dir, "/data/b")
	require.NoError(t, err)

	require.NoError(t, a.TryLock())
	require.NoError(t, b.TryLock())
	require.NoError(t, a.Unlock())
	require.NoError(t, b.Unlock())
}

func TestLock_ReacquireAfterUnlock(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	first, err := New(dir, "/data")
	require.NoError(t, err)
	require.NoError(t, first.TryLock())
	require.NoError(t, first.Unlock())

	second, err := New(dir, "/data")
	require.NoError(t, err)
	require.NoError(t, second.TryLock())
	require.NoError(t, second.Unlock())
}
