// Package gpt3 provides the GPT-3 model family profile.
package gpt3

import (
	"fmt"

	"github.com/vk/trainconfgo/internal/baseconfig"
	"github.com/vk/trainconfgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the family builder with the central registry.
func (m Module) Register(r *registry.Registry) {
	r.Register("gpt3", newProfile)
}

// architectures maps a "{size}{measure}" key to the architecture trained at
// that scale.
var architectures = map[string]baseconfig.ModelConfig{
	"126M": {NumLayers: 12, HiddenSize: 768, FFNHiddenSize: 3072, NumAttentionHeads: 12, PositionEmbeddingType: "learned_absolute"},
	"5B":   {NumLayers: 24, HiddenSize: 4096, FFNHiddenSize: 16384, NumAttentionHeads: 32, PositionEmbeddingType: "learned_absolute"},
	"7B":   {NumLayers: 32, HiddenSize: 4096, FFNHiddenSize: 16384, NumAttentionHeads: 32, PositionEmbeddingType: "learned_absolute"},
	"20B":  {NumLayers: 44, HiddenSize: 6144, FFNHiddenSize: 24576, NumAttentionHeads: 48, PositionEmbeddingType: "learned_absolute"},
	"40B":  {NumLayers: 48, HiddenSize: 8192, FFNHiddenSize: 32768, NumAttentionHeads: 64, PositionEmbeddingType: "learned_absolute"},
	"175B": {NumLayers: 96, HiddenSize: 12288, FFNHiddenSize: 49152, NumAttentionHeads: 96, PositionEmbeddingType: "learned_absolute"},
}

type profile struct {
	base  *baseconfig.Basic
	model baseconfig.ModelConfig
}

func newProfile(b *baseconfig.Basic) (registry.Profile, error) {
	key := fmt.Sprintf("%d%s", b.Size(), b.Measure())
	model, ok := architectures[key]
	if !ok {
		return nil, fmt.Errorf("gpt3: no architecture defined for size %s", key)
	}
	return &profile{base: b, model: model}, nil
}

func (p *profile) ModelConfig() *baseconfig.ModelConfig {
	model := p.model
	return &model
}

func (p *profile) TokenizerConfig() *baseconfig.TokenizerConfig {
	return &baseconfig.TokenizerConfig{
		Library: "megatron",
		Type:    "GPT2BPETokenizer",
		Model:   p.base.TokenizerPath(),
	}
}

func (p *profile) Base() *baseconfig.Basic { return p.base }
