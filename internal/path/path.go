package path

import (
	"os"
	"path/filepath"
	"strings"
)

// Default path suffixes (relative to home directory)
const (
	defaultConfigSuffix = ".config/kesu"
	defaultCacheSuffix  = ".cache/kesu"
	configFileName      = "config.yaml"
)

// Paths holds configurable paths for kesu.
type Paths struct {
	configDir string
	cacheDir  string
}

// Option is a functional option for configuring Paths.
type Option func(*Paths)

// WithConfigDir sets a custom config directory.
func WithConfigDir(dir string) Option {
	return func(p *Paths) {
		p.configDir = dir
	}
}

// WithCacheDir sets a custom cache directory.
func WithCacheDir(dir string) Option {
	return func(p *Paths) {
		p.cacheDir = dir
	}
}

// New creates a new Paths with optional custom configuration.
func New(opts ...Option) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	p := &Paths{
		configDir: filepath.Join(home, defaultConfigSuffix),
		cacheDir:  filepath.Join(home, defaultCacheSuffix),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// ConfigDir returns the config directory.
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// CacheDir returns the cache directory.
func (p *Paths) CacheDir() string {
	return p.cacheDir
}

// ConfigFile returns the default config file.
// Returns <configDir>/config.yaml
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, configFileName)
}

// LockDir returns the directory holding per-root lock files.
// Returns <cacheDir>/locks
func (p *Paths) LockDir() string {
	return filepath.Join(p.cacheDir, "locks")
}

// EnsureDir creates a directory if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Expand expands ~ to the home directory.
func Expand(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}

	if path == "~" {
		return os.UserHomeDir()
	}

	return path, nil
}
