package files

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/spf13/afero"
	kesuerrors "github.com/terassyi/kesu/internal/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultParallelism is the number of top-level subtrees scanned concurrently.
const DefaultParallelism = 4

// Scanner builds a Folder tree from a filesystem.
type Scanner struct {
	fs          afero.Fs
	parallelism int
	showHidden  bool
	progress    func(scanned int64)
	scanned     atomic.Int64
}

// ScannerOption is a functional option for configuring a Scanner.
type ScannerOption func(*Scanner)

// WithParallelism sets how many top-level subtrees are scanned at once.
func WithParallelism(n int) ScannerOption {
	return func(s *Scanner) {
		if n > 0 {
			s.parallelism = n
		}
	}
}

// WithHidden controls whether dot-files and dot-directories are included.
func WithHidden(show bool) ScannerOption {
	return func(s *Scanner) {
		s.showHidden = show
	}
}

// WithProgress registers fn to be called with the running entry count.
// fn is called from several goroutines and must be safe for that.
func WithProgress(fn func(scanned int64)) ScannerOption {
	return func(s *Scanner) {
		s.progress = fn
	}
}

// NewScanner creates a Scanner over fs.
func NewScanner(fs afero.Fs, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		fs:          fs,
		parallelism: DefaultParallelism,
		showHidden:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scanned returns the number of entries visited so far.
// It is safe to call while Scan is running.
func (s *Scanner) Scanned() int64 {
	return s.scanned.Load()
}

// Scan walks root and returns its tree. Entries that cannot be read are
// skipped with a warning; only a failure on root itself is returned.
func (s *Scanner) Scan(ctx context.Context, root string) (*Folder, error) {
	info, err := s.fs.Stat(root)
	if err != nil {
		return nil, kesuerrors.NewScanError(root, err)
	}
	if !info.IsDir() {
		return nil, kesuerrors.NewScanError(root, errors.New("not a directory"))
	}

	entries, err := afero.ReadDir(s.fs, root)
	if err != nil {
		return nil, kesuerrors.NewScanError(root, err)
	}

	folder := NewFolder(filepath.Base(root))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for _, entry := range entries {
		if !s.include(entry) {
			continue
		}
		s.visit()

		if !entry.IsDir() {
			mu.Lock()
			folder.Add(NewFile(entry.Name(), entry.Size()))
			mu.Unlock()
			continue
		}

		dir := filepath.Join(root, entry.Name())
		name := entry.Name()
		g.Go(func() error {
			sub, err := s.scanDir(gctx, dir, name)
			if err != nil {
				return err
			}
			mu.Lock()
			folder.Add(sub)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Debug("scan complete", "root", root, "entries", folder.NumDescendants, "size", folder.Size())
	return folder, nil
}

// scanDir builds the subtree at dir sequentially.
func (s *Scanner) scanDir(ctx context.Context, dir, name string) (*Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	folder := NewFolder(name)
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		slog.Warn("skipping unreadable directory", "path", dir, "error", err)
		return folder, nil
	}

	for _, entry := range entries {
		if !s.include(entry) {
			continue
		}
		s.visit()

		if !entry.IsDir() {
			folder.Add(NewFile(entry.Name(), entry.Size()))
			continue
		}
		sub, err := s.scanDir(ctx, filepath.Join(dir, entry.Name()), entry.Name())
		if err != nil {
			return nil, err
		}
		folder.Add(sub)
	}
	return folder, nil
}

func (s *Scanner) visit() {
	n := s.scanned.Add(1)
	if s.progress != nil {
		s.progress(n)
	}
}

func (s *Scanner) include(entry os.FileInfo) bool {
	return s.showHidden || !strings.HasPrefix(entry.Name(), ".")
}
