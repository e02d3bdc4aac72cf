package app

import (
	"context"
	"fmt"

	"github.com/vk/trainconfgo/internal/ctxlog"
	"github.com/vk/trainconfgo/internal/emit"
	"github.com/vk/trainconfgo/internal/generate"
)

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.recipes) == 0 {
		a.logger.Warn("No recipes found, nothing to generate.")
		return nil
	}

	a.logger.Info("Starting config generation.", "recipes", len(a.recipes), "workers", appConfig.WorkerCount)
	gen := generate.New(a.registry, appConfig.WorkerCount)
	artifacts, err := gen.Run(ctx, a.recipes)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	for i, artifact := range artifacts {
		if appConfig.OutputDir == "" {
			// Separate documents so several artifacts form a valid YAML stream.
			if i > 0 {
				fmt.Fprintln(a.outW, "---")
			}
			if err := emit.Render(a.outW, artifact); err != nil {
				return err
			}
			continue
		}

		path, err := emit.WriteYAML(appConfig.OutputDir, artifact)
		if err != nil {
			return err
		}
		a.logger.Info("Artifact written.", "run", artifact.Run.Name, "path", path)
	}

	if appConfig.Summary {
		emit.Summary(a.outW, artifacts)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
