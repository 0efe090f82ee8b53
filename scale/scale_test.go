package scale

import (
	"testing"

	"github.com/jsphweid/fretwise/catalog"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noteNames(s Scale) []string {
	var out []string
	for _, n := range s.Notes() {
		out = append(out, n.String())
	}
	return out
}

func TestNewBuildsOneOctave(t *testing.T) {
	s, err := New(pitch.MustParse("C4"), "major")
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal([]string{"C4", "D4", "E4", "F4", "G4", "A4", "B4"}, noteNames(s))
	assert.Equal("C Major (Ionian)", s.Name())
	assert.Equal([]int{0, 2, 4, 5, 7, 9, 11}, s.Pattern())
}

func TestNewUnknownPattern(t *testing.T) {
	_, err := New(pitch.MustParse("C"), "klingon")
	assert.ErrorIs(t, err, catalog.ErrUnknownPattern)
}

func TestNewSpanningTwoOctaves(t *testing.T) {
	s, err := NewSpanning(pitch.MustParse("A3"), "pentatonic_minor", 2)
	require.NoError(t, err)
	assert.Len(t, s.Notes(), 10)
	assert.Equal(t, "A4", s.Notes()[5].String())
}

func TestDegreeWrapsWithOctaveBump(t *testing.T) {
	s, _ := New(pitch.MustParse("C4"), "major")

	assert := assert.New(t)
	first, err := s.Degree(1)
	assert.NoError(err)
	assert.Equal("C4", first.String())

	fifth, _ := s.Degree(5)
	assert.Equal("G4", fifth.String())

	eighth, _ := s.Degree(8)
	assert.Equal("C5", eighth.String())

	tenth, _ := s.Degree(10)
	assert.Equal("E5", tenth.String())
}

func TestDegreeBelowOneIsError(t *testing.T) {
	s, _ := New(pitch.MustParse("C4"), "major")
	_, err := s.Degree(0)
	assert.ErrorIs(t, err, ErrDegreeOutOfRange)
	_, err = s.Degree(-3)
	assert.ErrorIs(t, err, ErrDegreeOutOfRange)
}

func TestContains(t *testing.T) {
	s, _ := New(pitch.MustParse("G"), "major")
	assert.True(t, s.Contains(6)) // F#
	assert.False(t, s.Contains(5))
}

func TestTranspose(t *testing.T) {
	s, _ := New(pitch.MustParse("C4"), "dorian")
	moved := s.Transpose(7)
	assert.Equal(t, "G", moved.Root().Name())
	assert.Equal(t, "dorian", moved.Type())
}

func TestTriadQualitiesOfMajor(t *testing.T) {
	s, _ := New(pitch.MustParse("C4"), "major")
	expected := []string{"maj", "min", "min", "maj", "maj", "min", "dim"}
	for degree := 1; degree <= 7; degree++ {
		c, err := s.TriadAt(degree)
		require.NoError(t, err)
		assert.Equal(t, expected[degree-1], c.Quality(), "degree %d", degree)
	}
}

func TestTriadQualitiesOfHarmonicMinor(t *testing.T) {
	s, _ := New(pitch.MustParse("A3"), "minor_harmonic")

	assert := assert.New(t)
	one, _ := s.TriadAt(1)
	assert.Equal("min", one.Quality())
	three, _ := s.TriadAt(3)
	assert.Equal("aug", three.Quality())
	five, _ := s.TriadAt(5)
	assert.Equal("maj", five.Quality())
	seven, _ := s.TriadAt(7)
	assert.Equal("dim", seven.Quality())
}

func TestTriadAtNonTriadicStack(t *testing.T) {
	s, _ := New(pitch.MustParse("C4"), "pentatonic_major")
	_, err := s.TriadAt(1)
	assert.Error(t, err)
}

func TestSeventhQualitiesOfMajor(t *testing.T) {
	s, _ := New(pitch.MustParse("C4"), "major")
	expected := []string{"maj7", "min7", "min7", "maj7", "dom7", "min7", "min7b5"}
	for degree := 1; degree <= 7; degree++ {
		c, err := s.SeventhAt(degree)
		require.NoError(t, err)
		assert.Equal(t, expected[degree-1], c.Quality(), "degree %d", degree)
	}
}

func TestSeventhAtAsOverridesQuality(t *testing.T) {
	s, _ := New(pitch.MustParse("C4"), "major")
	c, err := s.SeventhAtAs(5, "dom7")
	require.NoError(t, err)
	assert.Equal(t, "Gdom7", c.Symbol())

	c, err = s.SeventhAtAs(5, "maj7")
	require.NoError(t, err)
	assert.Equal(t, "maj7", c.Quality())
}

func TestDiatonicTriadsSkipBadStacks(t *testing.T) {
	major, _ := New(pitch.MustParse("C4"), "major")
	assert.Len(t, major.DiatonicTriads(), 7)

	pentatonic, _ := New(pitch.MustParse("C4"), "pentatonic_major")
	assert.Less(t, len(pentatonic.DiatonicTriads()), 5)
}
