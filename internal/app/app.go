package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/trainconfgo/internal/ctxlog"
	"github.com/vk/trainconfgo/internal/families"
	"github.com/vk/trainconfgo/internal/recipe"
	"github.com/vk/trainconfgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	recipes  []*recipe.Recipe
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// When no modules are passed, the built-in model families are registered.
func NewApp(outW io.Writer, appConfig *Config, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load all recipes up front; a failure to load config is a fatal
	// startup error.
	recipes, err := recipe.LoadRecipesRecursively(ctx, appConfig.RecipePath)
	if err != nil {
		panic(fmt.Errorf("failed to load recipes: %w", err))
	}
	logger.Debug("Recipes loaded.", "count", len(recipes))

	// Create and populate the registry with model family builders.
	reg := registry.New()
	if len(modules) == 0 {
		modules = families.Core()
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All model families registered.", "families", reg.Families())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		recipes:  recipes,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
