package files

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	kesuerrors "github.com/terassyi/kesu/internal/errors"
)

// Deleter removes entries from disk.
type Deleter struct {
	fs afero.Fs
}

// NewDeleter creates a Deleter over fs.
func NewDeleter(fs afero.Fs) *Deleter {
	return &Deleter{fs: fs}
}

// Delete removes rootPath/segments.../name recursively. The scanned tree is
// left alone; callers drop the entry with Folder.Remove once this succeeds.
func (d *Deleter) Delete(ctx context.Context, rootPath string, segments []string, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	full := EntryPath(rootPath, segments, name)
	if err := d.exists(full); err != nil {
		return kesuerrors.NewDeleteError(full, err)
	}
	if err := d.fs.RemoveAll(full); err != nil {
		return kesuerrors.NewDeleteError(full, err)
	}

	slog.Info("deleted entry", "path", full)
	return nil
}

// exists stats path without following a final symlink when fs allows it.
func (d *Deleter) exists(path string) error {
	if lfs, ok := d.fs.(afero.Lstater); ok {
		_, _, err := lfs.LstatIfPossible(path)
		return err
	}
	_, err := d.fs.Stat(path)
	return err
}

// EntryPath joins rootPath, segments and name into a filesystem path.
func EntryPath(rootPath string, segments []string, name string) string {
	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, rootPath)
	parts = append(parts, segments...)
	parts = append(parts, name)
	return filepath.Join(parts...)
}
