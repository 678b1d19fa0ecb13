package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PositionalPath(t *testing.T) {
	out := &bytes.Buffer{}
	config, shouldExit, err := Parse([]string{"rigs/humanoid.hcl"}, out)
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "rigs/humanoid.hcl", config.RigPath)
	assert.Equal(t, "text", config.LogFormat)
	assert.Equal(t, "info", config.LogLevel)
}

func TestParse_RigFlagWins(t *testing.T) {
	out := &bytes.Buffer{}
	config, _, err := Parse([]string{"-rig", "a.hcl", "b.hcl"}, out)
	require.NoError(t, err)
	assert.Equal(t, "a.hcl", config.RigPath)
}

func TestParse_Shorthand(t *testing.T) {
	out := &bytes.Buffer{}
	config, _, err := Parse([]string{"-r", "a.hcl"}, out)
	require.NoError(t, err)
	assert.Equal(t, "a.hcl", config.RigPath)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	out := &bytes.Buffer{}
	config, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, config)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	_, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
}

func TestParse_InvalidLogOptions(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		_, _, err := Parse([]string{"-log-format", "xml", "a.hcl"}, &bytes.Buffer{})
		require.Error(t, err)
		exitErr, ok := err.(*ExitError)
		require.True(t, ok)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("level", func(t *testing.T) {
		_, _, err := Parse([]string{"-log-level", "loud", "a.hcl"}, &bytes.Buffer{})
		require.Error(t, err)
		exitErr, ok := err.(*ExitError)
		require.True(t, ok)
		assert.Equal(t, 2, exitErr.Code)
	})
}

func TestParse_NormalizesCase(t *testing.T) {
	config, _, err := Parse([]string{"-log-level", "DEBUG", "-log-format", "JSON", "a.hcl"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
}
