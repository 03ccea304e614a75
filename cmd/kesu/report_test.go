package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terassyi/kesu/internal/config"
	kesuerrors "github.com/terassyi/kesu/internal/errors"
	"github.com/terassyi/kesu/internal/printer"
)

func writeFile(t *testing.T, name string, size int) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0755))
	require.NoError(t, os.WriteFile(name, make([]byte, size), 0644))
}

func TestRunReport(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "videos", "a.mp4"), 5000)
	writeFile(t, filepath.Join(root, "notes.txt"), 300)
	writeFile(t, filepath.Join(root, "tiny"), 1)

	cfg := config.Default()
	cfg.Log.Level = "error"

	var buf bytes.Buffer
	require.NoError(t, runReport(context.Background(), root, &buf, &buf, cfg, reportConfig{top: 2, output: outputText}))

	output := buf.String()
	assert.Contains(t, output, "Scanned 4 entries")
	assert.Contains(t, output, "videos/")
	assert.Contains(t, output, "notes.txt")
	assert.Contains(t, output, "... and 1 more")
	assert.Less(t, strings.Index(output, "videos/"), strings.Index(output, "notes.txt"))
}

func TestRunReport_MissingRoot(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "error"

	var buf bytes.Buffer
	err := runReport(context.Background(), filepath.Join(t.TempDir(), "missing"), &buf, &buf, cfg, reportConfig{top: 10, output: outputText})

	var fsErr *kesuerrors.FSError
	require.ErrorAs(t, err, &fsErr)
	assert.Equal(t, kesuerrors.CodeScanFailed, fsErr.Base.Code)
	assert.Contains(t, buf.String(), "scan failed")
}

func TestRunReport_LogFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a"), 1)
	logFile := filepath.Join(t.TempDir(), "logs", "kesu.log")

	cfg := config.Default()
	cfg.Log.File = logFile

	var buf bytes.Buffer
	require.NoError(t, runReport(context.Background(), root, &buf, &buf, cfg, reportConfig{top: 10, output: outputText}))

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "scan complete")
}

func TestRunReport_JSON(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "videos", "a.mp4"), 5000)
	writeFile(t, filepath.Join(root, "notes.txt"), 300)

	cfg := config.Default()
	cfg.Log.Level = "error"

	var out, errOut bytes.Buffer
	require.NoError(t, runReport(context.Background(), root, &out, &errOut, cfg, reportConfig{top: 10, output: printer.FormatJSON}))

	var report printer.Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report), "progress must not leak into JSON output")
	assert.Equal(t, root, report.Root)
	require.Len(t, report.Entries, 2)
	assert.Equal(t, "videos", report.Entries[0].Name)
	assert.Contains(t, errOut.String(), "Scanned 3 entries")
}

func TestResolveRoot(t *testing.T) {
	t.Parallel()

	wd, err := os.Getwd()
	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "default", args: nil, want: wd},
		{name: "relative", args: []string{"sub"}, want: filepath.Join(wd, "sub")},
		{name: "absolute", args: []string{"/var/log/"}, want: "/var/log"},
		{name: "home", args: []string{"~/Downloads"}, want: filepath.Join(home, "Downloads")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := resolveRoot(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
