package progression

import (
	"testing"

	"github.com/jsphweid/fretwise/harmony"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresChords(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestParseSymbols(t *testing.T) {
	p, err := ParseSymbols([]string{"C", "Am", "F", "G7"})
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(4, p.Len())
	assert.Equal("Cmaj - Amin - Fmaj - Gdom7", p.String())
}

func TestParseSymbolsRejectsGarbage(t *testing.T) {
	_, err := ParseSymbols([]string{"C", "Hm"})
	assert.Error(t, err)
}

func TestInferKeyOfMajorProgression(t *testing.T) {
	p, err := ParseSymbols([]string{"C", "Am", "F", "G"})
	require.NoError(t, err)

	key := p.InferKey(harmony.NewEngine())
	assert := assert.New(t)
	assert.Equal("C", key.Scale.Root().Name())
	assert.Equal("major", key.Scale.Type())
	assert.InDelta(1.0, key.Confidence, 0.001)
}

func TestInferKeyOfMinorProgression(t *testing.T) {
	p, err := ParseSymbols([]string{"Am", "Dm", "E7", "Am"})
	require.NoError(t, err)

	key := p.InferKey(harmony.NewEngine())
	assert.Equal(t, "A", key.Scale.Root().Name())
	assert.Greater(t, key.Confidence, 0.7)
}

func TestInferKeyConfidenceDropsOffKey(t *testing.T) {
	inKey, _ := ParseSymbols([]string{"C", "F", "G"})
	chromaticish, _ := ParseSymbols([]string{"C", "F#", "Bb7"})

	engine := harmony.NewEngine()
	assert.Greater(t, inKey.InferKey(engine).Confidence,
		chromaticish.InferKey(engine).Confidence)
}
