package emit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vk/trainconfgo/internal/generate"
)

// Render writes an artifact as a YAML document to w.
func Render(w io.Writer, artifact generate.Artifact) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(artifact); err != nil {
		return fmt.Errorf("failed to encode artifact %s: %w", artifact.Run.Name, err)
	}
	return enc.Close()
}

// WriteYAML serializes an artifact into "<run name>.yaml" inside dir,
// creating the directory if needed, and returns the written path.
func WriteYAML(dir string, artifact generate.Artifact) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, artifact.Run.Name+".yaml")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := Render(f, artifact); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}

	return path, nil
}
