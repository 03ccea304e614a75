package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"dev", "dev"},
		{"1.2.3", "v1.2.3"},
		{"v0.4.0", "v0.4.0"},
		{"v1.0.0-rc.1", "v1.0.0-rc.1"},
		{"1.2", "v1.2.0"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, normalizeVersion(tt.input))
		})
	}
}

func TestVersionCmd_JSON(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionFormat = outputJSON
	t.Cleanup(func() {
		versionFormat = "text"
		versionCmd.SetOut(nil)
	})

	require.NoError(t, versionCmd.RunE(versionCmd, nil))

	var info VersionInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, "dev", info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.NotEmpty(t, info.Platform)
}

func TestVersionCmd_Text(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	t.Cleanup(func() { versionCmd.SetOut(nil) })

	require.NoError(t, versionCmd.RunE(versionCmd, nil))
	assert.Contains(t, buf.String(), "kesu version dev")
}
