package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AllFlags(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{
		"-recipe", "recipes/gpt3.hcl",
		"-out", "generated",
		"-summary",
		"-log-format", "text",
		"-log-level", "debug",
		"-workers", "8",
	}, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "recipes/gpt3.hcl", cfg.RecipePath)
	assert.Equal(t, "generated", cfg.OutputDir)
	assert.True(t, cfg.Summary)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.WorkerCount)
}

func TestParse_PositionalPath(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"recipes"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "recipes", cfg.RecipePath)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 4, cfg.WorkerCount)
}

func TestParse_ShorthandFlag(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"-r", "recipes"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "recipes", cfg.RecipePath)
}

func TestParse_NoPathPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse(nil, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	cfg, shouldExit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
}

func TestParse_InvalidValues(t *testing.T) {
	t.Parallel()

	t.Run("log format", func(t *testing.T) {
		_, _, err := Parse([]string{"-log-format", "xml", "recipes"}, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "invalid log-format")
	})

	t.Run("log level", func(t *testing.T) {
		_, _, err := Parse([]string{"-log-level", "verbose", "recipes"}, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
		assert.Contains(t, exitErr.Message, "invalid log-level")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := Parse([]string{"-dne"}, &bytes.Buffer{})
		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 2, exitErr.Code)
	})
}
