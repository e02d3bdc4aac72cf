package generate

import (
	"fmt"

	"github.com/vk/trainconfgo/internal/baseconfig"
	"github.com/vk/trainconfgo/internal/recipe"
	"github.com/vk/trainconfgo/internal/registry"
)

// Artifact bundles the configuration records generated for one recipe. It is
// the unit serialized into a single output file.
type Artifact struct {
	Run       baseconfig.RunConfig        `yaml:"run" json:"run"`
	Trainer   baseconfig.TrainerConfig    `yaml:"trainer" json:"trainer"`
	Optim     baseconfig.OptimizerConfig  `yaml:"optim" json:"optim"`
	Data      baseconfig.DataConfig       `yaml:"data" json:"data"`
	Model     *baseconfig.ModelConfig     `yaml:"model" json:"model"`
	Tokenizer *baseconfig.TokenizerConfig `yaml:"tokenizer" json:"tokenizer"`

	// Family is carried for reporting; it is implied by the run name and
	// not serialized again.
	Family string `yaml:"-" json:"-"`
}

// buildArtifact assembles the full configuration set for a single recipe.
func buildArtifact(reg *registry.Registry, r *recipe.Recipe) (Artifact, error) {
	version := 0
	if r.Version != nil {
		version = *r.Version
	}
	size := 0
	if r.Size != nil {
		size = *r.Size
	}
	measure := baseconfig.Measure("")
	if r.Measure != nil {
		measure = baseconfig.Measure(*r.Measure)
	}

	base, err := baseconfig.New(r.Family, version, size, measure, r.Settings)
	if err != nil {
		return Artifact{}, fmt.Errorf("recipe from %s: %w", r.Source, err)
	}

	profile, err := reg.Build(r.Family, base)
	if err != nil {
		return Artifact{}, fmt.Errorf("recipe from %s: %w", r.Source, err)
	}

	trainer := base.TrainerConfig()
	if len(r.Custom) > 0 {
		trainer.Custom = r.Custom
	}

	return Artifact{
		Run:       base.RunConfig(),
		Trainer:   trainer,
		Optim:     base.OptimConfig(),
		Data:      base.DataConfig(),
		Model:     profile.ModelConfig(),
		Tokenizer: profile.TokenizerConfig(),
		Family:    r.Family,
	}, nil
}
