// Package scale builds scales from a root and a catalog pattern and derives
// their diatonic chords by measuring the intervals that actually result from
// stacking degrees, so modes classify correctly without per-mode tables.
package scale

import (
	"errors"
	"fmt"

	"github.com/jsphweid/fretwise/catalog"
	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/util"
)

// ErrDegreeOutOfRange is returned for degree numbers below 1.
var ErrDegreeOutOfRange = errors.New("scale degree out of range")

// triadQualities classifies a stacked third+fifth above a degree.
var triadQualities = map[[2]int]string{
	{4, 7}: "maj",
	{3, 7}: "min",
	{3, 6}: "dim",
	{4, 8}: "aug",
}

// seventhQualities classifies a stacked third+fifth+seventh.
var seventhQualities = map[[3]int]string{
	{4, 7, 11}: "maj7",
	{4, 7, 10}: "dom7",
	{3, 7, 10}: "min7",
	{3, 6, 10}: "min7b5",
	{3, 6, 9}:  "dim7",
}

// Scale is an immutable run of notes: a root, a catalog pattern and a span
// in octaves.
type Scale struct {
	root    pitch.Note
	id      string
	pattern []int
	octaves int
	notes   []pitch.Note
}

// New builds a one-octave scale from a catalog pattern id.
func New(root pitch.Note, typeID string) (Scale, error) {
	return NewSpanning(root, typeID, 1)
}

// NewSpanning builds a scale covering the given number of octaves.
func NewSpanning(root pitch.Note, typeID string, octaves int) (Scale, error) {
	pattern, err := catalog.ScalePattern(typeID)
	if err != nil {
		return Scale{}, err
	}
	if octaves < 1 {
		octaves = 1
	}
	var notes []pitch.Note
	for oct := 0; oct < octaves; oct++ {
		for _, iv := range pattern {
			notes = append(notes, root.Transpose(iv+12*oct))
		}
	}
	notes[0] = root
	return Scale{root: root, id: typeID, pattern: pattern, octaves: octaves, notes: notes}, nil
}

// Root returns the scale root.
func (s Scale) Root() pitch.Note { return s.root }

// Type returns the catalog pattern id, e.g. "minor_harmonic".
func (s Scale) Type() string { return s.id }

// Name returns a display name like "C Harmonic Minor".
func (s Scale) Name() string {
	return s.root.Name() + " " + catalog.ScaleName(s.id)
}

// Pattern returns the semitone offsets of one octave of the scale.
func (s Scale) Pattern() []int {
	out := make([]int, len(s.pattern))
	copy(out, s.pattern)
	return out
}

// Notes returns every note of the scale across its span.
func (s Scale) Notes() []pitch.Note {
	out := make([]pitch.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of degrees in one octave.
func (s Scale) Len() int { return len(s.pattern) }

// PitchClasses returns one octave's pitch classes in degree order.
func (s Scale) PitchClasses() []int {
	out := make([]int, len(s.pattern))
	for i, iv := range s.pattern {
		out[i] = util.Mod12(s.root.PC() + iv)
	}
	return out
}

// PCSet returns the scale's pitch classes as a set.
func (s Scale) PCSet() map[int]bool {
	set := make(map[int]bool)
	for _, pc := range s.PitchClasses() {
		set[pc] = true
	}
	return set
}

// Contains reports whether a pitch class belongs to the scale.
func (s Scale) Contains(pc int) bool {
	return s.PCSet()[util.Mod12(pc)]
}

// Degree returns the 1-indexed degree. Degrees past the pattern length wrap
// upward with an octave bump, so Degree(8) of C major is C5.
func (s Scale) Degree(n int) (pitch.Note, error) {
	if n < 1 {
		return pitch.Note{}, fmt.Errorf("%w: %d", ErrDegreeOutOfRange, n)
	}
	idx := n - 1
	octaves := idx / len(s.pattern)
	return s.root.Transpose(s.pattern[idx%len(s.pattern)] + 12*octaves), nil
}

// Transpose shifts the whole scale, preserving pattern and span.
func (s Scale) Transpose(semitones int) Scale {
	moved, _ := NewSpanning(s.root.Transpose(semitones), s.id, s.octaves)
	return moved
}

// TriadAt stacks degrees n, n+2 and n+4 and classifies the result by its
// measured intervals. Stacks that form no catalog triad (pentatonics mostly)
// are an error callers skip.
func (s Scale) TriadAt(degree int) (chord.Chord, error) {
	root, err := s.Degree(degree)
	if err != nil {
		return chord.Chord{}, err
	}
	third, _ := s.Degree(degree + 2)
	fifth, _ := s.Degree(degree + 4)
	key := [2]int{third.MIDI() - root.MIDI(), fifth.MIDI() - root.MIDI()}
	quality, ok := triadQualities[key]
	if !ok {
		return chord.Chord{}, fmt.Errorf("no triad at degree %d of %s", degree, s.Name())
	}
	return chord.New(root, quality)
}

// SeventhAt stacks degrees n, n+2, n+4 and n+6 and classifies the result.
func (s Scale) SeventhAt(degree int) (chord.Chord, error) {
	root, err := s.Degree(degree)
	if err != nil {
		return chord.Chord{}, err
	}
	third, _ := s.Degree(degree + 2)
	fifth, _ := s.Degree(degree + 4)
	seventh, _ := s.Degree(degree + 6)
	key := [3]int{
		third.MIDI() - root.MIDI(),
		fifth.MIDI() - root.MIDI(),
		seventh.MIDI() - root.MIDI(),
	}
	quality, ok := seventhQualities[key]
	if !ok {
		return chord.Chord{}, fmt.Errorf("no seventh chord at degree %d of %s", degree, s.Name())
	}
	return chord.New(root, quality)
}

// SeventhAtAs builds the seventh chord on a degree with an explicit quality
// instead of the measured one.
func (s Scale) SeventhAtAs(degree int, quality string) (chord.Chord, error) {
	root, err := s.Degree(degree)
	if err != nil {
		return chord.Chord{}, err
	}
	return chord.New(root, quality)
}

// DiatonicTriads returns the triads on every degree, skipping the ones that
// do not form a catalog quality.
func (s Scale) DiatonicTriads() []chord.Chord {
	var out []chord.Chord
	for degree := 1; degree <= len(s.pattern); degree++ {
		c, err := s.TriadAt(degree)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

// DiatonicSevenths returns the seventh chords on every degree, skipping the
// ones that do not form a catalog quality.
func (s Scale) DiatonicSevenths() []chord.Chord {
	var out []chord.Chord
	for degree := 1; degree <= len(s.pattern); degree++ {
		c, err := s.SeventhAt(degree)
		if err != nil {
			continue
		}
		out = append(out, c)
	}
	return out
}
