package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeRecipeDir(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.hcl"), []byte(content), 0600))
	return dir
}

func TestNewConfig_RequiresRecipePath(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)

	cfg, err := NewConfig(Config{RecipePath: "recipes"})
	require.NoError(t, err)
	assert.Equal(t, "recipes", cfg.RecipePath)
}

func TestApp_EndToEnd_WritesArtifacts(t *testing.T) {
	t.Parallel()

	recipeDir := writeRecipeDir(t, `
model "gpt3" {
  version = 3
  size    = 5

  num_nodes         = 2
  gpu_count         = 8
  max_steps_per_run = 100
  seq_length        = 2048
  global_batch_size = 128
  data_paths        = ["a", "b", "c"]
}
`)
	outDir := filepath.Join(t.TempDir(), "generated")

	cfg, err := NewConfig(Config{
		RecipePath:  recipeDir,
		OutputDir:   outDir,
		LogLevel:    "error",
		WorkerCount: 2,
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := NewApp(out, cfg)
	require.NoError(t, a.Run(context.Background(), cfg))

	raw, err := os.ReadFile(filepath.Join(outDir, "gpt3_5B.yaml"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	require.Contains(t, decoded, "run")
	require.Contains(t, decoded, "trainer")
	require.Contains(t, decoded, "optim")
	require.Contains(t, decoded, "data")
	require.Contains(t, decoded, "model")
	require.Contains(t, decoded, "tokenizer")
}

func TestApp_RendersToWriterWithoutOutputDir(t *testing.T) {
	t.Parallel()

	recipeDir := writeRecipeDir(t, `
model "mistral" { size = 7 }
model "llama"   { size = 7 }
`)

	cfg, err := NewConfig(Config{RecipePath: recipeDir, LogLevel: "error"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := NewApp(out, cfg)
	require.NoError(t, a.Run(context.Background(), cfg))

	assert.Contains(t, out.String(), "mistral_7B")
	assert.Contains(t, out.String(), "llama_7B")
	assert.Contains(t, out.String(), "---", "multiple artifacts form a YAML stream")
}

func TestApp_SummaryTable(t *testing.T) {
	t.Parallel()

	recipeDir := writeRecipeDir(t, `
model "gpt3" {
  size      = 5
  gpu_count = 8
}
`)
	outDir := t.TempDir()

	cfg, err := NewConfig(Config{
		RecipePath: recipeDir,
		OutputDir:  outDir,
		LogLevel:   "error",
		Summary:    true,
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := NewApp(out, cfg)
	require.NoError(t, a.Run(context.Background(), cfg))

	assert.Contains(t, out.String(), "gpt3_5B")
}

func TestApp_EmptyRecipeDirIsNoop(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{RecipePath: t.TempDir(), LogLevel: "error"})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a := NewApp(out, cfg)
	require.NoError(t, a.Run(context.Background(), cfg))
}

func TestNewApp_PanicsOnInvalidRecipe(t *testing.T) {
	t.Parallel()

	recipeDir := writeRecipeDir(t, `model "gpt3" {`)
	cfg, err := NewConfig(Config{RecipePath: recipeDir, LogLevel: "error"})
	require.NoError(t, err)

	assert.Panics(t, func() {
		NewApp(&bytes.Buffer{}, cfg)
	})
}
