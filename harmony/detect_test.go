package harmony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectChordRootPosition(t *testing.T) {
	engine := NewEngine()
	det := engine.DetectChord([]int{60, 64, 67}) // C4 E4 G4

	require.True(t, det.Detected)
	assert := assert.New(t)
	assert.Equal("Cmaj", det.Chord.Symbol())
	assert.Equal(0, det.Inversion)
	assert.Equal("C4", det.Bass.String())
}

func TestDetectChordInversion(t *testing.T) {
	engine := NewEngine()
	det := engine.DetectChord([]int{64, 67, 72}) // E4 G4 C5

	require.True(t, det.Detected)
	assert := assert.New(t)
	assert.Equal("C", det.Chord.Root().Name())
	assert.Equal(1, det.Inversion)
	assert.Equal("E4", det.Bass.String())
}

func TestDetectChordQualities(t *testing.T) {
	engine := NewEngine()
	cases := []struct {
		name   string
		notes  []int
		symbol string
	}{
		{"minor", []int{60, 63, 67}, "Cmin"},
		{"diminished", []int{62, 65, 68}, "Ddim"},
		{"dominant seventh", []int{55, 59, 62, 65}, "Gdom7"},
		{"minor seventh", []int{57, 60, 64, 67}, "Amin7"},
		{"power chord", []int{40, 47}, "E5"},
		{"sus4", []int{60, 65, 67}, "Csus4"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			det := engine.DetectChord(c.notes)
			require.True(t, det.Detected)
			assert.Equal(t, c.symbol, det.Chord.Symbol())
		})
	}
}

func TestDetectChordIgnoresOctaveDoubling(t *testing.T) {
	engine := NewEngine()
	det := engine.DetectChord([]int{48, 60, 64, 67, 72})

	require.True(t, det.Detected)
	assert.Equal(t, "Cmaj", det.Chord.Symbol())
	assert.Equal(t, 0, det.Inversion)
}

func TestDetectChordUnrecognized(t *testing.T) {
	engine := NewEngine()

	assert := assert.New(t)
	assert.False(engine.DetectChord([]int{60}).Detected)
	assert.False(engine.DetectChord(nil).Detected)
	// a cluster is no chord
	assert.False(engine.DetectChord([]int{60, 61, 62}).Detected)
}

func TestSuggestScalesCoversDiatonicSet(t *testing.T) {
	engine := NewEngine()
	suggestions := engine.SuggestScales([]int{60, 62, 64, 65, 67, 69, 71})

	require.NotEmpty(t, suggestions)
	assert := assert.New(t)
	assert.LessOrEqual(len(suggestions), 10)

	top := suggestions[0]
	assert.Equal(100, top.Score)
	assert.Equal(RelDiatonic, top.Relationship)
	assert.Equal("C", top.Scale.Root().Name())

	for i := 1; i < len(suggestions); i++ {
		assert.GreaterOrEqual(suggestions[i-1].Score, suggestions[i].Score)
	}
}

func TestSuggestScalesEmptyInput(t *testing.T) {
	engine := NewEngine()
	assert.Empty(t, engine.SuggestScales(nil))
}
