package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCommandSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pentagon.stl")
	out, err := execute(t, "render",
		"--source", "truncated-tetrahedron",
		"--spreads", "0,0.5,0",
		"--stl", path)
	require.NoError(t, err)
	assert.Contains(t, out, "5-gon shadow")
	assert.Contains(t, out, path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	// 80-byte header + count + 16 triangles for a pentagonal prism.
	assert.EqualValues(t, 84+50*16, info.Size())
}

func TestRenderCommandFigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hendecagon.png")
	_, err := execute(t, "render",
		"--source", "trunc-tet-plus-icosa",
		"--spreads", "0.75,0.25,0.5",
		"--fig", path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRenderCommandJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heptagon.stl")
	out, err := execute(t, "--format", "json", "render",
		"--source", "trunc-tet-plus-dual-tet",
		"--spreads", "0.5,0.5,0.5",
		"--stl", path)
	require.NoError(t, err)

	var decoded struct {
		Source    string     `json:"source"`
		Spreads   [3]float64 `json:"spreads"`
		HullCount int        `json:"hull_count"`
		STL       string     `json:"stl"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 7, decoded.HullCount)
	assert.Equal(t, [3]float64{0.5, 0.5, 0.5}, decoded.Spreads)
	assert.Equal(t, path, decoded.STL)
}

func TestRenderCommandNoOutputs(t *testing.T) {
	_, err := execute(t, "render", "--source", "tetrahedron", "--spreads", "0,0,0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRenderCommandBadSpreads(t *testing.T) {
	_, err := execute(t, "render",
		"--source", "tetrahedron",
		"--spreads", "0,0,2",
		"--stl", filepath.Join(t.TempDir(), "out.stl"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
