package generate

import (
	"context"
	"errors"
	"sync"

	"github.com/vk/trainconfgo/internal/ctxlog"
	"github.com/vk/trainconfgo/internal/recipe"
	"github.com/vk/trainconfgo/internal/registry"
)

// Generator maps recipes to artifacts with a bounded worker pool.
type Generator struct {
	registry *registry.Registry
	workers  int
}

// New creates a Generator. A non-positive worker count falls back to one.
func New(reg *registry.Registry, workers int) *Generator {
	if workers < 1 {
		workers = 1
	}
	return &Generator{
		registry: reg,
		workers:  workers,
	}
}

// Run generates one artifact per recipe. Output order matches recipe order
// regardless of worker scheduling. On failure the remaining work is
// cancelled and all errors collected so far are returned joined.
func (g *Generator) Run(ctx context.Context, recipes []*recipe.Recipe) ([]Artifact, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Generator starting.", "recipes", len(recipes), "workers", g.workers)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		index  int
		recipe *recipe.Recipe
	}

	jobs := make(chan job)
	artifacts := make([]Artifact, len(recipes))
	errsByIndex := make([]error, len(recipes))

	var wg sync.WaitGroup
	for workerID := 0; workerID < g.workers; workerID++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			workerLogger := logger.With("workerID", workerID)
			workerLogger.Debug("Worker started.")

			for j := range jobs {
				if ctx.Err() != nil {
					continue
				}

				artifact, err := buildArtifact(g.registry, j.recipe)
				if err != nil {
					workerLogger.Error("Recipe generation failed.", "family", j.recipe.Family, "source", j.recipe.Source, "error", err)
					errsByIndex[j.index] = err
					cancel()
					continue
				}

				workerLogger.Debug("Recipe generated.", "run", artifact.Run.Name)
				artifacts[j.index] = artifact
			}

			workerLogger.Debug("Worker finished.")
		}(workerID)
	}

	for i, r := range recipes {
		jobs <- job{index: i, recipe: r}
	}
	close(jobs)
	wg.Wait()

	if err := errors.Join(errsByIndex...); err != nil {
		return nil, err
	}

	// A cancelled context with no recorded recipe error means the caller
	// aborted the run.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Info("Generation finished.", "artifacts", len(artifacts))
	return artifacts, nil
}
