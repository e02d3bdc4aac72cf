package gpt3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/trainconfgo/internal/baseconfig"
	"github.com/vk/trainconfgo/internal/registry"
)

func newBase(t *testing.T, size int, measure baseconfig.Measure, s baseconfig.Settings) *baseconfig.Basic {
	t.Helper()
	b, err := baseconfig.New("gpt3", 3, size, measure, s)
	require.NoError(t, err)
	return b
}

func TestNewProfile_KnownSizes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		size      int
		measure   baseconfig.Measure
		numLayers int
		hidden    int
	}{
		{126, baseconfig.MeasureMillions, 12, 768},
		{5, baseconfig.MeasureBillions, 24, 4096},
		{175, baseconfig.MeasureBillions, 96, 12288},
	}

	for _, tc := range cases {
		p, err := newProfile(newBase(t, tc.size, tc.measure, baseconfig.Settings{}))
		require.NoError(t, err)

		model := p.ModelConfig()
		assert.Equal(t, tc.numLayers, model.NumLayers)
		assert.Equal(t, tc.hidden, model.HiddenSize)
		assert.Equal(t, "learned_absolute", model.PositionEmbeddingType)
		assert.Zero(t, model.NumMoEExperts)
	}
}

func TestNewProfile_UnknownSize(t *testing.T) {
	t.Parallel()

	_, err := newProfile(newBase(t, 6, baseconfig.MeasureBillions, baseconfig.Settings{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no architecture defined for size 6B")
}

func TestTokenizerConfig_PropagatesPath(t *testing.T) {
	t.Parallel()

	path := "/tokenizers/gpt2"
	p, err := newProfile(newBase(t, 5, baseconfig.MeasureBillions, baseconfig.Settings{TokenizerPath: &path}))
	require.NoError(t, err)

	tok := p.TokenizerConfig()
	assert.Equal(t, "megatron", tok.Library)
	assert.Equal(t, "GPT2BPETokenizer", tok.Type)
	require.NotNil(t, tok.Model)
	assert.Equal(t, path, *tok.Model)
}

func TestModule_RegistersFamily(t *testing.T) {
	t.Parallel()

	r := registry.New()
	Module{}.Register(r)
	assert.Equal(t, []string{"gpt3"}, r.Families())
}
