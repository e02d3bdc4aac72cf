// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file contains the loading functions that discover recipe files on
// disk and consolidate their model blocks into a single slice. A user may
// split recipes across many files and directories; generation operates on
// the unified view.
package recipe

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/trainconfgo/internal/ctxlog"
	"github.com/vk/trainconfgo/internal/fsutil"
)

// newRecipesFromFile parses a single HCL file and returns the Recipes found
// within it.
func newRecipesFromFile(filePath string, parser *hclparse.Parser) ([]*Recipe, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsedFile hclRecipeFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsedFile)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	recipes := make([]*Recipe, 0, len(parsedFile.Models))
	for _, parsed := range parsedFile.Models {
		r, err := newRecipeFromHCL(parsed, filePath)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}

	return recipes, nil
}

// LoadRecipesRecursively finds and parses all HCL files under a given path.
// The path may also point at a single .hcl file.
func LoadRecipesRecursively(ctx context.Context, recipePath string) ([]*Recipe, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading recipes from path", "path", recipePath)

	files, err := fsutil.FindFilesByExtension(recipePath, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find recipe files in %s: %w", recipePath, err)
	}

	if len(files) == 0 {
		logger.Warn("No .hcl recipe files found in path", "path", recipePath)
		return nil, nil
	}

	var recipes []*Recipe
	parser := hclparse.NewParser()
	for _, file := range files {
		rs, err := newRecipesFromFile(file, parser)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rs...)
	}

	logger.Info("Recipes loaded successfully.", "files", len(files), "recipes", len(recipes))
	return recipes, nil
}
