package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCommandSingle(t *testing.T) {
	out, err := execute(t, "verify", "pentagon")
	require.NoError(t, err)
	assert.Contains(t, out, "ok   pentagon")
	assert.Contains(t, out, "1 passed, 0 failed")
}

func TestVerifyCommandAll(t *testing.T) {
	// The legacy heptagon triple does not reproduce, so a full run fails.
	out, err := execute(t, "verify")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "ok   pentagon")
	assert.Contains(t, out, "FAIL heptagon-legacy")
	assert.Contains(t, out, "4 passed, 1 failed")
}

func TestVerifyCommandAllJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "verify")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var decoded struct {
		Results []struct {
			Name            string `json:"name"`
			Passed          bool   `json:"passed"`
			ActualHullCount int    `json:"actual_hull_count"`
		} `json:"results"`
		Passed int `json:"passed"`
		Failed int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 4, decoded.Passed)
	assert.Equal(t, 1, decoded.Failed)
	assert.Len(t, decoded.Results, 5)
}

func TestVerifyCommandUnknownPreset(t *testing.T) {
	_, err := execute(t, "verify", "dodecagon")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVerifyCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`presets:
  - name: pentagon
    vertex-source: truncated-tetrahedron
    vertex-count: 12
    spreads: [0, 0.5, 0]
    expected-hull-count: 5
    max-interior-angle: 150
`), 0o644))

	out, err := execute(t, "verify", "--presets", path)
	require.NoError(t, err)
	assert.Contains(t, out, "1 passed, 0 failed")
}

func TestVerifyCommandFromMissingFile(t *testing.T) {
	_, err := execute(t, "verify", "--presets", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
