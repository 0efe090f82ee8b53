package chord

import (
	"testing"

	"github.com/jsphweid/fretwise/catalog"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noteNames(c Chord) []string {
	var out []string
	for _, n := range c.Notes() {
		out = append(out, n.String())
	}
	return out
}

func TestNewBuildsRootPosition(t *testing.T) {
	c, err := New(pitch.MustParse("C4"), "maj")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]string{"C4", "E4", "G4"}, noteNames(c))
	assert.Equal("Cmaj", c.Symbol())
	assert.Equal("C Major", c.Name())
	assert.Equal(0, c.Inversion())
}

func TestNewResolvesAliases(t *testing.T) {
	c, err := New(pitch.MustParse("A"), "m")
	require.NoError(t, err)
	assert.Equal(t, "min", c.Quality())
	assert.Equal(t, []string{"A4", "C5", "E5"}, noteNames(c))
}

func TestNewUnknownQuality(t *testing.T) {
	_, err := New(pitch.MustParse("C"), "min15")
	assert.ErrorIs(t, err, catalog.ErrUnknownQuality)
}

func TestParseSymbols(t *testing.T) {
	cases := []struct {
		input   string
		root    string
		quality string
	}{
		{"C", "C", "maj"},
		{"F#m7", "F#", "min7"},
		{"Bb maj7", "Bb", "maj7"},
		{"A minor", "A", "min"},
		{"G7", "G", "dom7"},
		{"Ddim", "D", "dim"},
		{"Eb", "Eb", "maj"},
	}
	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			parsed, err := Parse(c.input)
			require.NoError(t, err)
			assert.Equal(t, c.root, parsed.Root().Name())
			assert.Equal(t, c.quality, parsed.Quality())
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "Hmaj", "C klingon", "123"} {
		_, err := Parse(input)
		assert.Error(t, err, input)
	}
}

func TestInvertMovesBottomNotesUp(t *testing.T) {
	c, _ := New(pitch.MustParse("C4"), "maj")

	first, err := c.Invert(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"E4", "G4", "C5"}, noteNames(first))
	assert.Equal(t, "Cmaj/E", first.Symbol())
	assert.Equal(t, "C", first.Root().Name())

	second, err := c.Invert(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"G4", "C5", "E5"}, noteNames(second))
	assert.Equal(t, "G4", second.Bass().String())
}

func TestInvertOutOfRange(t *testing.T) {
	c, _ := New(pitch.MustParse("C4"), "maj")
	_, err := c.Invert(3)
	assert.Error(t, err)
	_, err = c.Invert(-1)
	assert.Error(t, err)
}

func TestAllInversions(t *testing.T) {
	c, _ := New(pitch.MustParse("G"), "dom7")
	inversions := c.AllInversions()

	assert := assert.New(t)
	assert.Len(inversions, 4)
	assert.Equal(0, inversions[0].Inversion())
	assert.Equal(3, inversions[3].Inversion())
	assert.Equal("F5", inversions[0].Notes()[3].String())
	assert.Equal("G5", inversions[1].Notes()[3].String())
}

func TestPitchClassesReduce(t *testing.T) {
	c, _ := New(pitch.MustParse("C"), "13")
	assert.Equal(t, []int{0, 4, 7, 10, 2, 9}, c.PitchClasses())
	assert.Equal(t, []int{0, 4, 7, 10, 14, 21}, c.Intervals())
}

func TestTransposePreservesQualityAndInversion(t *testing.T) {
	c, _ := New(pitch.MustParse("C4"), "min7")
	inv, _ := c.Invert(1)
	moved := inv.Transpose(2)

	assert := assert.New(t)
	assert.Equal("D", moved.Root().Name())
	assert.Equal("min7", moved.Quality())
	assert.Equal(1, moved.Inversion())
}

func TestNewSlashPicksTheMatchingInversion(t *testing.T) {
	c, err := NewSlash(pitch.MustParse("C4"), "maj", pitch.MustParse("G"))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Inversion())
	assert.Equal(t, "G4", c.Bass().String())

	_, err = NewSlash(pitch.MustParse("C4"), "maj", pitch.MustParse("F#"))
	assert.Error(t, err)
}

func TestPowerChordIsTwoNotes(t *testing.T) {
	c, err := New(pitch.MustParse("C"), "5")
	require.NoError(t, err)
	assert.Len(t, c.Notes(), 2)
}
