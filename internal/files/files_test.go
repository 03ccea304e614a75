package files

import (
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kesuerrors "github.com/terassyi/kesu/internal/errors"
)

// newTestFs creates a MemMapFs with the given files (path -> size).
func newTestFs(t *testing.T, files map[string]int) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, size := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, afero.WriteFile(fs, path, make([]byte, size), 0644))
	}
	return fs
}

func names(entries []FileOrFolder) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}

func TestFolder_AddKeepsOrder(t *testing.T) {
	t.Parallel()
	f := NewFolder("root")
	f.Add(NewFile("b", 10))
	f.Add(NewFile("a", 10))
	f.Add(NewFile("big", 100))
	f.Add(NewFile("small", 1))

	assert.Equal(t, []string{"big", "a", "b", "small"}, names(f.Contents()))
	assert.Equal(t, int64(121), f.Size())
	assert.Equal(t, 4, f.NumDescendants)
}

func TestFolder_NestedCounts(t *testing.T) {
	t.Parallel()
	sub := NewFolder("sub")
	sub.Add(NewFile("x", 5))
	sub.Add(NewFile("y", 5))

	root := NewFolder("root")
	root.Add(sub)
	root.Add(NewFile("z", 1))

	assert.Equal(t, 4, root.NumDescendants)
	assert.Equal(t, int64(11), root.Size())

	got, ok := root.Folder([]string{"sub"})
	require.True(t, ok)
	assert.Same(t, sub, got)

	_, ok = root.Folder([]string{"z"})
	assert.False(t, ok, "a file is not a folder")
	_, ok = root.Folder([]string{"missing"})
	assert.False(t, ok)
}

func TestFolder_Remove(t *testing.T) {
	t.Parallel()
	inner := NewFolder("inner")
	inner.Add(NewFile("a", 40))
	inner.Add(NewFile("b", 2))
	sub := NewFolder("sub")
	sub.Add(inner)
	root := NewFolder("root")
	root.Add(sub)
	root.Add(NewFile("c", 8))

	removed, ok := root.Remove([]string{"sub", "inner"}, "a")
	require.True(t, ok)
	assert.Equal(t, "a", removed.Name())

	assert.Equal(t, int64(2), inner.Size())
	assert.Equal(t, int64(2), sub.Size())
	assert.Equal(t, int64(10), root.Size())
	assert.Equal(t, 1, inner.NumDescendants)
	assert.Equal(t, 2, sub.NumDescendants)
	assert.Equal(t, 4, root.NumDescendants)

	removed, ok = root.Remove(nil, "sub")
	require.True(t, ok)
	assert.Equal(t, "sub", removed.Name())
	assert.Equal(t, int64(8), root.Size())
	assert.Equal(t, 1, root.NumDescendants)

	_, ok = root.Remove(nil, "missing")
	assert.False(t, ok)
	_, ok = root.Remove([]string{"nope"}, "c")
	assert.False(t, ok)
}

func TestScanner_Scan(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t, map[string]int{
		"/data/a.txt":           10,
		"/data/dir1/b.txt":      20,
		"/data/dir1/sub/c.txt":  30,
		"/data/dir2/d.txt":      5,
		"/data/.hidden/e.txt":   1,
		"/data/dir2/.f.swp":     2,
		"/data/dir3/empty/.keep": 0,
	})

	s := NewScanner(fs, WithParallelism(2))
	root, err := s.Scan(context.Background(), "/data")
	require.NoError(t, err)

	assert.Equal(t, "data", root.Name())
	assert.Equal(t, int64(68), root.Size())
	// a.txt, dir1, b.txt, sub, c.txt, dir2, d.txt, .f.swp, .hidden, e.txt, dir3, empty, .keep
	assert.Equal(t, 13, root.NumDescendants)
	assert.Equal(t, int64(13), s.Scanned())
	assert.Equal(t, "dir1", root.Contents()[0].Name())

	sub, ok := root.Folder([]string{"dir1", "sub"})
	require.True(t, ok)
	assert.Equal(t, int64(30), sub.Size())
}

func TestScanner_SkipsHidden(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t, map[string]int{
		"/data/a.txt":         10,
		"/data/.hidden/e.txt": 1,
		"/data/dir/.f":        2,
	})

	root, err := NewScanner(fs, WithHidden(false)).Scan(context.Background(), "/data")
	require.NoError(t, err)
	assert.Equal(t, int64(10), root.Size())
	assert.ElementsMatch(t, []string{"a.txt", "dir"}, names(root.Contents()))
}

func TestScanner_Errors(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t, map[string]int{"/data/file": 1})
	s := NewScanner(fs)

	_, err := s.Scan(context.Background(), "/missing")
	var fsErr *kesuerrors.FSError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, kesuerrors.CodeScanFailed, fsErr.Base.Code)

	_, err = s.Scan(context.Background(), "/data/file")
	require.Error(t, err)
}

func TestScanner_Cancelled(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t, map[string]int{"/data/dir/a": 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner(fs).Scan(ctx, "/data")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanner_Progress(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t, map[string]int{
		"/data/a":     1,
		"/data/d/b":   1,
		"/data/e/f/c": 1,
	})

	var calls atomic.Int64
	var last atomic.Int64
	s := NewScanner(fs, WithProgress(func(n int64) {
		calls.Add(1)
		for {
			prev := last.Load()
			if n <= prev || last.CompareAndSwap(prev, n) {
				break
			}
		}
	}))
	_, err := s.Scan(context.Background(), "/data")
	require.NoError(t, err)

	// a, d, b, e, f, c
	assert.Equal(t, int64(6), calls.Load())
	assert.Equal(t, int64(6), last.Load())
}

func TestDeleter_Delete(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t, map[string]int{
		"/data/keep.txt":      3,
		"/data/dir/big.bin":   100,
		"/data/dir/small.bin": 7,
	})

	d := NewDeleter(fs)
	require.NoError(t, d.Delete(context.Background(), "/data", []string{"dir"}, "big.bin"))

	exists, err := afero.Exists(fs, "/data/dir/big.bin")
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = afero.Exists(fs, "/data/dir/small.bin")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, d.Delete(context.Background(), "/data", nil, "dir"))
	exists, err = afero.DirExists(fs, "/data/dir")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestDeleter_Missing(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t, map[string]int{"/data/a": 1})

	err := NewDeleter(fs).Delete(context.Background(), "/data", nil, "nope")
	var fsErr *kesuerrors.FSError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, kesuerrors.CodeDeleteFailed, fsErr.Base.Code)
	assert.Equal(t, "/data/nope", fsErr.Path)
}

func TestDeleter_Cancelled(t *testing.T) {
	t.Parallel()
	fs := newTestFs(t, map[string]int{"/data/a": 1})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewDeleter(fs).Delete(ctx, "/data", nil, "a")
	require.ErrorIs(t, err, context.Canceled)

	exists, err := afero.Exists(fs, "/data/a")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestEntryPath(t *testing.T) {
	t.Parallel()
	segments := make([]string, 1, 4)
	segments[0] = "a"
	assert.Equal(t, "/root/a/b", EntryPath("/root", segments, "b"))
	assert.Equal(t, "/root/b", EntryPath("/root", nil, "b"))
	// the caller's backing array is untouched
	assert.Equal(t, []string{"a"}, segments)
	assert.Empty(t, segments[1:cap(segments)][0])
}
