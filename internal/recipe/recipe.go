// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Recipe structure, the format-agnostic representation
// of a single `model` block from a user's .hcl files.
//
// Why pointer-typed fields?
//
// The external runner contract is "best-effort defaults": a recipe may omit
// any run parameter and the generated configs carry null in its place. Go's
// zero values cannot distinguish "omitted" from "explicitly zero", so every
// optional attribute decodes into a pointer. The same applies to data_paths,
// where an absent list and an empty list mean different things: absent skips
// data weighting entirely, while an empty list is a user error that must be
// reported.
package recipe

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"

	"github.com/vk/trainconfgo/internal/baseconfig"
)

// Recipe is the format-agnostic representation of a `model` block.
type Recipe struct {
	Family  string
	Version *int
	Size    *int
	Measure *string

	Settings baseconfig.Settings

	// Custom holds evaluated free-form attributes from the `custom` block,
	// passed through into the trainer config untouched.
	Custom map[string]any

	// Source is the file the block was parsed from, for error reporting.
	Source string
}

// hclRecipeFile represents the top-level structure of a recipe file for
// decoding.
type hclRecipeFile struct {
	Models []*hclModel `hcl:"model,block"`
}

// hclModel represents a single 'model' block for initial decoding from HCL.
type hclModel struct {
	Family string `hcl:"family,label"`

	Version *int    `hcl:"version,optional"`
	Size    *int    `hcl:"size,optional"`
	Measure *string `hcl:"measure,optional"`

	NumNodes        *int      `hcl:"num_nodes,optional"`
	GPUCount        *int      `hcl:"gpu_count,optional"`
	MaxStepsPerRun  *int      `hcl:"max_steps_per_run,optional"`
	SeqLength       *int      `hcl:"seq_length,optional"`
	GlobalBatchSize *int      `hcl:"global_batch_size,optional"`
	TokenizerPath   *string   `hcl:"tokenizer_path,optional"`
	DataPaths       *[]string `hcl:"data_paths,optional"`

	Custom *hclCustomBlock `hcl:"custom,block"`
}

// hclCustomBlock keeps the custom block's body undecoded; its attributes are
// evaluated separately because their names are not known in advance.
type hclCustomBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// newRecipeFromHCL validates a decoded model block and translates it into a
// Recipe.
func newRecipeFromHCL(parsed *hclModel, filePath string) (*Recipe, error) {
	if parsed.Family == "" {
		return nil, fmt.Errorf("model block in %s has an empty family label", filePath)
	}
	if parsed.Size == nil {
		return nil, fmt.Errorf("model %q in %s: size is required to pick an architecture", parsed.Family, filePath)
	}
	if parsed.Measure != nil {
		switch baseconfig.Measure(*parsed.Measure) {
		case baseconfig.MeasureMillions, baseconfig.MeasureBillions:
		default:
			return nil, fmt.Errorf("model %q in %s: measure must be %q or %q, got %q",
				parsed.Family, filePath, baseconfig.MeasureMillions, baseconfig.MeasureBillions, *parsed.Measure)
		}
	}

	r := &Recipe{
		Family:  parsed.Family,
		Version: parsed.Version,
		Size:    parsed.Size,
		Measure: parsed.Measure,
		Settings: baseconfig.Settings{
			NumNodes:        parsed.NumNodes,
			GPUCount:        parsed.GPUCount,
			MaxStepsPerRun:  parsed.MaxStepsPerRun,
			SeqLength:       parsed.SeqLength,
			GlobalBatchSize: parsed.GlobalBatchSize,
			TokenizerPath:   parsed.TokenizerPath,
		},
		Source: filePath,
	}

	if parsed.DataPaths != nil {
		// Deliberately keeps empty-but-present lists: baseconfig rejects
		// them with a defined error instead of silently dropping them.
		if *parsed.DataPaths == nil {
			r.Settings.DataPaths = []string{}
		} else {
			r.Settings.DataPaths = *parsed.DataPaths
		}
	}

	if parsed.Custom != nil {
		custom, err := decodeCustomBody(parsed.Custom.Body)
		if err != nil {
			return nil, fmt.Errorf("model %q in %s: %w", parsed.Family, filePath, err)
		}
		r.Custom = custom
	}

	return r, nil
}
