// Package llama provides the Llama model family profile.
package llama

import (
	"fmt"

	"github.com/vk/trainconfgo/internal/baseconfig"
	"github.com/vk/trainconfgo/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the family builder with the central registry.
func (m Module) Register(r *registry.Registry) {
	r.Register("llama", newProfile)
}

var architectures = map[string]baseconfig.ModelConfig{
	"7B":  {NumLayers: 32, HiddenSize: 4096, FFNHiddenSize: 11008, NumAttentionHeads: 32, NumQueryGroups: 32, PositionEmbeddingType: "rope"},
	"13B": {NumLayers: 40, HiddenSize: 5120, FFNHiddenSize: 13824, NumAttentionHeads: 40, NumQueryGroups: 40, PositionEmbeddingType: "rope"},
	"70B": {NumLayers: 80, HiddenSize: 8192, FFNHiddenSize: 28672, NumAttentionHeads: 64, NumQueryGroups: 8, PositionEmbeddingType: "rope"},
}

type profile struct {
	base  *baseconfig.Basic
	model baseconfig.ModelConfig
}

func newProfile(b *baseconfig.Basic) (registry.Profile, error) {
	key := fmt.Sprintf("%d%s", b.Size(), b.Measure())
	model, ok := architectures[key]
	if !ok {
		return nil, fmt.Errorf("llama: no architecture defined for size %s", key)
	}
	return &profile{base: b, model: model}, nil
}

func (p *profile) ModelConfig() *baseconfig.ModelConfig {
	model := p.model
	return &model
}

func (p *profile) TokenizerConfig() *baseconfig.TokenizerConfig {
	return &baseconfig.TokenizerConfig{
		Library: "sentencepiece",
		Type:    "SentencePieceTokenizer",
		Model:   p.base.TokenizerPath(),
	}
}

func (p *profile) Base() *baseconfig.Basic { return p.base }
