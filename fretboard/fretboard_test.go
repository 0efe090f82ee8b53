package fretboard

import (
	"testing"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustChord(t *testing.T, root, quality string) chord.Chord {
	t.Helper()
	c, err := chord.New(pitch.MustParse(root), quality)
	require.NoError(t, err)
	return c
}

func TestPositionsOfE(t *testing.T) {
	positions := PositionsOf(4, 12) // E

	// both E strings open and at the octave, plus one spot per inner string
	assert := assert.New(t)
	assert.Len(positions, 8)
	assert.Contains(positions, Position{String: 0, Fret: 0, Note: pitch.MustParse("E2")})
	assert.Contains(positions, Position{String: 0, Fret: 12, Note: pitch.MustParse("E3")})
	assert.Contains(positions, Position{String: 2, Fret: 2, Note: pitch.MustParse("E3")})
	assert.Contains(positions, Position{String: 5, Fret: 0, Note: pitch.MustParse("E4")})
}

func TestPositionsOfRespectMaxFret(t *testing.T) {
	for _, p := range PositionsOf(1, 5) { // C#
		assert.LessOrEqual(t, p.Fret, 5)
	}
	assert.Empty(t, PositionsOf(1, 0))
}

func TestBuildVoicingGreedyAssignment(t *testing.T) {
	v, ok := BuildVoicing(mustChord(t, "C", "maj"), 12)

	require.True(t, ok)
	assert := assert.New(t)
	assert.Equal([6]int{8, 7, 5, Muted, Muted, Muted}, v.Frets)
	assert.Equal([6]int{3, 3, 2, 0, 0, 0}, v.Fingers)
	assert.Equal(3, v.SoundedStrings())
}

func TestBuildVoicingNeedsThreeStrings(t *testing.T) {
	_, ok := BuildVoicing(mustChord(t, "F", "maj"), 0)
	assert.False(t, ok)
}

func TestBuildVoicingSoundsOnlyChordTones(t *testing.T) {
	c := mustChord(t, "A", "min7")
	v, ok := BuildVoicing(c, 12)
	require.True(t, ok)

	want := c.PCSet()
	for _, n := range v.Notes() {
		assert.True(t, want[n.PC()], n.String())
	}
}

func TestBuildVoicingStopsAtThreeStrings(t *testing.T) {
	v, ok := BuildVoicing(mustChord(t, "G", "dom7"), 12)

	require.True(t, ok)
	assert := assert.New(t)
	assert.Equal(3, v.SoundedStrings())
	assert.Equal([6]int{3, 2, 0, Muted, Muted, Muted}, v.Frets)
}

func TestOpenShapes(t *testing.T) {
	cases := []struct {
		root    string
		quality string
		frets   [6]int
	}{
		{"E", "min", [6]int{0, 2, 2, 0, 0, 0}},
		{"C", "maj", [6]int{Muted, 3, 2, 0, 1, 0}},
		{"G", "maj", [6]int{3, 2, 0, 0, 0, 3}},
		{"A", "dom7", [6]int{Muted, 0, 2, 0, 2, 0}},
	}
	for _, c := range cases {
		t.Run(c.root+c.quality, func(t *testing.T) {
			v, ok := OpenShape(mustChord(t, c.root, c.quality))
			require.True(t, ok)
			assert.Equal(t, c.frets, v.Frets)
			assert.Equal(t, "open", v.Label)
		})
	}
}

func TestOpenShapeMissing(t *testing.T) {
	_, ok := OpenShape(mustChord(t, "F", "maj"))
	assert.False(t, ok)
	_, ok = OpenShape(mustChord(t, "C", "sus4"))
	assert.False(t, ok)
}

func TestOpenShapeIsEnharmonic(t *testing.T) {
	sharp, okSharp := OpenShape(mustChord(t, "B#", "maj")) // B# = C
	natural, okNatural := OpenShape(mustChord(t, "C", "maj"))

	require.True(t, okSharp)
	require.True(t, okNatural)
	assert.Equal(t, natural.Frets, sharp.Frets)
}

func TestBarreShapesForF(t *testing.T) {
	voicings := BarreShapes(mustChord(t, "F", "maj"), 12)

	require.Len(t, voicings, 2)
	assert := assert.New(t)
	assert.Equal([6]int{1, 3, 3, 2, 1, 1}, voicings[0].Frets)
	assert.Equal([6]int{Muted, 8, 10, 10, 10, 8}, voicings[1].Frets)
	assert.Contains(voicings[0].Label, "E-shape")
	assert.Contains(voicings[1].Label, "A-shape")
}

func TestBarreBaseFretZeroIsPromoted(t *testing.T) {
	// E major's E-shape barre sits at fret 12, past the default limit
	voicings := BarreShapes(mustChord(t, "E", "maj"), 12)

	require.Len(t, voicings, 1)
	assert.Contains(t, voicings[0].Label, "A-shape")
	assert.Equal(t, [6]int{Muted, 7, 9, 9, 9, 7}, voicings[0].Frets)
}

func TestBarreShapesRespectMaxFret(t *testing.T) {
	assert.Empty(t, BarreShapes(mustChord(t, "F", "maj"), 2))
	assert.Empty(t, BarreShapes(mustChord(t, "C", "sus4"), 12))
}

func TestAllVoicingsIncludesOpenShape(t *testing.T) {
	voicings := AllVoicings(mustChord(t, "E", "min"), 12)

	require.NotEmpty(t, voicings)
	frets := make([][6]int, 0, len(voicings))
	for _, v := range voicings {
		frets = append(frets, v.Frets)
	}
	assert.Contains(t, frets, [6]int{0, 2, 2, 0, 0, 0})
}

func TestAllVoicingsDedupAndCap(t *testing.T) {
	voicings := AllVoicings(mustChord(t, "G", "dom7"), 12)

	assert := assert.New(t)
	assert.LessOrEqual(len(voicings), 8)
	seen := make(map[[6]int]bool)
	for _, v := range voicings {
		assert.False(seen[v.Frets])
		seen[v.Frets] = true
		assert.GreaterOrEqual(v.SoundedStrings(), 2)
	}
}

func TestAllVoicingsNoneInRange(t *testing.T) {
	assert.Empty(t, AllVoicings(mustChord(t, "F#", "sus2"), 0))
}
