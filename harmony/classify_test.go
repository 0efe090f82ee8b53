package harmony

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyChordSymbols(t *testing.T) {
	engine := NewEngine()
	cases := []struct {
		input   string
		root    string
		quality string
	}{
		{"C", "C", "maj"},
		{"Cmaj7", "C", "maj7"},
		{"f#m", "F#", "min"},
		{"Bb7", "Bb", "dom7"},
		// chord grammar wins over the scale grammar
		{"C major", "C", "maj"},
		{"A minor", "A", "min"},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			res, err := engine.Classify(c.input)
			require.NoError(t, err)
			assert.Equal(t, KindChord, res.Kind)
			assert.Equal(t, c.root, res.Chord.Root().Name())
			assert.Equal(t, c.quality, res.Chord.Quality())
		})
	}
}

func TestClassifyScaleNames(t *testing.T) {
	engine := NewEngine()
	cases := []struct {
		input  string
		root   string
		typeID string
	}{
		{"C harmonic minor", "C", "minor_harmonic"},
		{"D dorian", "D", "dorian"},
		{"F# natural minor", "F#", "minor_natural"},
		{"eb mixolydian", "Eb", "mixolydian"},
		{"A minor pentatonic", "A", "pentatonic_minor"},
		{"G blues", "G", "blues_minor"},
		{"B whole tone", "B", "whole_tone"},
		{"C melodic-minor", "C", "minor_melodic"},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			res, err := engine.Classify(c.input)
			require.NoError(t, err)
			assert.Equal(t, KindScale, res.Kind)
			assert.Equal(t, c.root, res.Scale.Root().Name())
			assert.Equal(t, c.typeID, res.Scale.Type())
		})
	}
}

func TestClassifyUnparseable(t *testing.T) {
	engine := NewEngine()
	for _, input := range []string{"", "   ", "H major", "C klingon", "purple rain"} {
		_, err := engine.Classify(input)
		assert.ErrorIs(t, err, ErrUnparseable, input)
	}
}
