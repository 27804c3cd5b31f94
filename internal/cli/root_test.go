package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "primecut", cmd.Use)
	assert.Contains(t, cmd.Long, "spread")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"search", "dist", "verify", "list", "render"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormatRejected(t *testing.T) {
	_, err := execute(t, "--format", "xml", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestParseSpreads(t *testing.T) {
	for _, test := range []struct {
		arg     string
		want    [3]float64
		wantErr bool
	}{
		{arg: "0,0.5,0", want: [3]float64{0, 0.5, 0}},
		{arg: " 0.75, 0.25, 0.5 ", want: [3]float64{0.75, 0.25, 0.5}},
		{arg: "1,1,1", want: [3]float64{1, 1, 1}},
		{arg: "0.5,0.5", wantErr: true},
		{arg: "0.5,0.5,0.5,0.5", wantErr: true},
		{arg: "a,b,c", wantErr: true},
		{arg: "0,0,1.5", wantErr: true}, // out of range
		{arg: "-0.1,0,0", wantErr: true},
	} {
		got, err := parseSpreads(test.arg)
		if test.wantErr {
			assert.Error(t, err, "arg %q", test.arg)
			continue
		}
		require.NoError(t, err, "arg %q", test.arg)
		assert.Equal(t, test.want, [3]float64(got), "arg %q", test.arg)
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "boom")))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))

	wrapped := WrapExitError(ExitFailure, "outer", errors.New("inner"))
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
	assert.Contains(t, wrapped.Error(), "outer")
	assert.Contains(t, wrapped.Error(), "inner")
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "truncated-tetrahedron")
	assert.Contains(t, out, "pentagon")
	assert.Contains(t, out, "tridecagon")
}

func TestListCommandJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "list")
	require.NoError(t, err)

	var decoded struct {
		Sources []string `json:"sources"`
		Presets []struct {
			Name              string     `json:"name"`
			VertexSource      string     `json:"vertex_source"`
			Spreads           [3]float64 `json:"spreads"`
			ExpectedHullCount int        `json:"expected_hull_count"`
		} `json:"presets"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Contains(t, decoded.Sources, "trunc-tet-plus-icosa")
	require.NotEmpty(t, decoded.Presets)
	assert.Equal(t, "pentagon", decoded.Presets[0].Name)
	assert.Equal(t, 5, decoded.Presets[0].ExpectedHullCount)
}
