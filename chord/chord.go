// Package chord builds chords from a root and a catalog quality and exposes
// the views the rest of the engine scores against: unreduced intervals,
// reduced pitch-class sets and inversions.
package chord

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/fretwise/catalog"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/util"
)

var symbolRe = regexp.MustCompile(`^([A-Ga-g](?:##|#|bb|b)?)[\s_-]*(.*)$`)

// Chord is an immutable stack of notes: a root, a canonical catalog quality
// and an inversion index. The zero inversion is root position.
type Chord struct {
	root      pitch.Note
	quality   string
	inversion int
	notes     []pitch.Note
}

// New builds a root-position chord. The quality may be any catalog alias
// ("m", "7", "major"); it is stored canonically.
func New(root pitch.Note, quality string) (Chord, error) {
	canonical, pattern, err := catalog.ChordQuality(quality)
	if err != nil {
		return Chord{}, err
	}
	notes := make([]pitch.Note, len(pattern))
	for i, iv := range pattern {
		notes[i] = root.Transpose(iv)
	}
	// keep the root's own spelling in slot 0
	notes[0] = root
	return Chord{root: root, quality: canonical, notes: notes}, nil
}

// Parse reads a chord symbol like "C", "F#m7", "Bb maj7" or "A minor".
// A bare root is a major triad.
func Parse(symbol string) (Chord, error) {
	m := symbolRe.FindStringSubmatch(strings.TrimSpace(symbol))
	if m == nil {
		return Chord{}, fmt.Errorf("%w: %q", catalog.ErrUnknownQuality, symbol)
	}
	root, err := pitch.Parse(m[1])
	if err != nil {
		return Chord{}, err
	}
	quality := strings.TrimSpace(m[2])
	if quality == "" {
		quality = "maj"
	}
	return New(root, quality)
}

// NewSlash builds a chord with an explicit bass: the inversion that puts the
// bass pitch class on the bottom. The bass must be a chord tone.
func NewSlash(root pitch.Note, quality string, bass pitch.Note) (Chord, error) {
	c, err := New(root, quality)
	if err != nil {
		return Chord{}, err
	}
	for i, pc := range c.PitchClasses() {
		if pc == bass.PC() {
			return c.Invert(i)
		}
	}
	return Chord{}, fmt.Errorf("bass %s is not a tone of %s", bass.Name(), c.Symbol())
}

// Root returns the chord root regardless of inversion.
func (c Chord) Root() pitch.Note { return c.root }

// Quality returns the canonical quality id, e.g. "min7".
func (c Chord) Quality() string { return c.quality }

// Inversion returns the inversion index (0 = root position).
func (c Chord) Inversion() int { return c.inversion }

// Notes returns the chord tones low to high for the current inversion.
func (c Chord) Notes() []pitch.Note {
	out := make([]pitch.Note, len(c.notes))
	copy(out, c.notes)
	return out
}

// Bass returns the lowest sounding note.
func (c Chord) Bass() pitch.Note { return c.notes[0] }

// Name returns a display name like "C Major 7th".
func (c Chord) Name() string {
	return c.root.Name() + " " + catalog.ChordNames[c.quality]
}

// Symbol returns the canonical symbol, with a slash bass when inverted.
func (c Chord) Symbol() string {
	s := c.root.Name() + c.quality
	if c.inversion > 0 {
		s += "/" + c.notes[0].Name()
	}
	return s
}

// Intervals returns the quality's unreduced semitone offsets (a 13th stays 21).
func (c Chord) Intervals() []int {
	pattern := catalog.ChordIntervals[c.quality]
	out := make([]int, len(pattern))
	copy(out, pattern)
	return out
}

// PitchClasses returns the reduced pitch classes, root first, deduplicated.
func (c Chord) PitchClasses() []int {
	reduced := catalog.ReducedIntervals(catalog.ChordIntervals[c.quality])
	out := make([]int, len(reduced))
	for i, iv := range reduced {
		out[i] = util.Mod12(c.root.PC() + iv)
	}
	return out
}

// PCSet returns the reduced pitch classes as a set.
func (c Chord) PCSet() map[int]bool {
	set := make(map[int]bool)
	for _, pc := range c.PitchClasses() {
		set[pc] = true
	}
	return set
}

// Invert returns the n-th inversion: the bottom n notes moved up an octave.
// n must be less than the note count.
func (c Chord) Invert(n int) (Chord, error) {
	if n < 0 || n >= len(c.notes) {
		return Chord{}, fmt.Errorf("inversion %d out of range for %d notes", n, len(c.notes))
	}
	base, _ := New(c.root, c.quality)
	notes := base.notes
	for i := 0; i < n; i++ {
		notes = append(notes[1:], notes[0].Transpose(12))
	}
	return Chord{root: c.root, quality: c.quality, inversion: n, notes: notes}, nil
}

// AllInversions returns root position through the last inversion, in order.
func (c Chord) AllInversions() []Chord {
	out := make([]Chord, len(c.notes))
	for i := range c.notes {
		out[i], _ = c.Invert(i)
	}
	return out
}

// Transpose shifts the whole chord, preserving quality and inversion.
func (c Chord) Transpose(semitones int) Chord {
	moved, _ := New(c.root.Transpose(semitones), c.quality)
	if c.inversion > 0 {
		moved, _ = moved.Invert(c.inversion)
	}
	return moved
}
