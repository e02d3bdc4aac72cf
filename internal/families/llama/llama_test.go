package llama

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/trainconfgo/internal/baseconfig"
)

func TestNewProfile_GroupedQueryAttention(t *testing.T) {
	t.Parallel()

	b, err := baseconfig.New("llama", 2, 70, baseconfig.MeasureBillions, baseconfig.Settings{})
	require.NoError(t, err)

	p, err := newProfile(b)
	require.NoError(t, err)

	model := p.ModelConfig()
	assert.Equal(t, 80, model.NumLayers)
	assert.Equal(t, 64, model.NumAttentionHeads)
	assert.Equal(t, 8, model.NumQueryGroups)
	assert.Equal(t, "rope", model.PositionEmbeddingType)
}

func TestNewProfile_MillionScaleRejected(t *testing.T) {
	t.Parallel()

	b, err := baseconfig.New("llama", 2, 70, baseconfig.MeasureMillions, baseconfig.Settings{})
	require.NoError(t, err)

	_, err = newProfile(b)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "70M")
}
