package pitch

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// ErrInvalidSpelling is returned when note text cannot be parsed.
var ErrInvalidSpelling = errors.New("invalid note spelling")

// DefaultOctave is assumed when a spelling carries no octave digit.
const DefaultOctave = 4

const (
	referenceMIDI      = 69 // A4
	referenceFrequency = 440.0
)

// letterPC maps natural note letters to their pitch class.
var letterPC = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// sharpNames and flatNames are the canonical respelling tables used after
// transposition. Sharps are preferred unless a flat spelling is requested.
var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var spellingRe = regexp.MustCompile(`^([A-Ga-g])(##|#|bb|b)?([0-8])?$`)

// Note is an immutable pitch: a spelling (letter plus accidental, kept only
// for display), a pitch class in [0,12) and an octave. Two Notes are the same
// pitch iff their absolute semitone indices match; the spelling never
// participates in pitch comparisons.
type Note struct {
	name   string // spelling without octave, e.g. "F#", "Bb"
	pc     int
	octave int
}

// Parse reads a spelling like "C", "F#3" or "Bb2". A missing octave defaults
// to octave 4; callers that only care about the pitch class use PC.
func Parse(s string) (Note, error) {
	m := spellingRe.FindStringSubmatch(s)
	if m == nil {
		return Note{}, fmt.Errorf("%w: %q", ErrInvalidSpelling, s)
	}
	letter := m[1][0]
	if letter >= 'a' {
		letter -= 'a' - 'A'
	}
	offset := 0
	switch m[2] {
	case "#":
		offset = 1
	case "##":
		offset = 2
	case "b":
		offset = -1
	case "bb":
		offset = -2
	}
	octave := DefaultOctave
	if m[3] != "" {
		octave, _ = strconv.Atoi(m[3])
	}
	pc := (letterPC[letter] + offset + 12) % 12
	return Note{name: string(letter) + m[2], pc: pc, octave: octave}, nil
}

// MustParse is Parse for spellings known at compile time (tables, tests).
func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// FromPitchClass builds a Note from a pitch class using the sharp-preferring
// spelling table.
func FromPitchClass(pc, octave int) Note {
	pc = ((pc % 12) + 12) % 12
	return Note{name: sharpNames[pc], pc: pc, octave: octave}
}

// FromMIDI builds a Note from a MIDI note number (C4 = 60).
func FromMIDI(m int) (Note, error) {
	if m < 0 || m > 127 {
		return Note{}, fmt.Errorf("%w: midi %d out of range", ErrInvalidSpelling, m)
	}
	return FromPitchClass(m%12, m/12-1), nil
}

// Name returns the spelling without octave, e.g. "F#".
func (n Note) Name() string { return n.name }

// String returns the spelling with octave, e.g. "F#3".
func (n Note) String() string { return n.name + strconv.Itoa(n.octave) }

// PC returns the pitch class in [0,12).
func (n Note) PC() int { return n.pc }

// Octave returns the octave number.
func (n Note) Octave() int { return n.octave }

// MIDI returns the absolute semitone index (C4 = 60, A4 = 69).
func (n Note) MIDI() int { return (n.octave+1)*12 + n.pc }

// Frequency returns the 12-TET frequency in Hz with A4 = 440.
func (n Note) Frequency() float64 {
	return referenceFrequency * math.Pow(2, float64(n.MIDI()-referenceMIDI)/12)
}

// Transpose returns a new Note shifted by semitones, respelled with sharps.
// The octave comes from floored division so indices below zero stay exact.
func (n Note) Transpose(semitones int) Note {
	total := n.MIDI() + semitones
	pc := ((total % 12) + 12) % 12
	return FromPitchClass(pc, (total-pc)/12-1)
}

// FlatSpelling returns the same pitch respelled from the flat table.
func (n Note) FlatSpelling() Note {
	return Note{name: flatNames[n.pc], pc: n.pc, octave: n.octave}
}

// IntervalTo returns the upward interval in semitones to other, mod 12.
func (n Note) IntervalTo(other Note) int {
	return ((other.pc-n.pc)%12 + 12) % 12
}

// PitchEqual reports whether both notes name the same absolute pitch,
// regardless of spelling (C#4 and Db4 are pitch-equal).
func (n Note) PitchEqual(other Note) bool {
	return n.MIDI() == other.MIDI()
}

// ClassEqual reports whether both notes share a pitch class, ignoring octave.
func (n Note) ClassEqual(other Note) bool {
	return n.pc == other.pc
}

// SpelledEqual reports whether spelling and octave match exactly. Used for
// display deduplication, never for compatibility scoring.
func (n Note) SpelledEqual(other Note) bool {
	return n.name == other.name && n.octave == other.octave
}
