// Package fretboard maps chords onto a six-string guitar in standard tuning:
// raw position enumeration, greedy voicing assembly and the movable barre
// shapes of the CAGED system.
package fretboard

import (
	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/util"
)

// Muted marks a string that does not sound in a voicing.
const Muted = -1

// StandardTuning is the open-string pitch per string, low E first.
var StandardTuning = [constants.NumStrings]pitch.Note{
	pitch.MustParse("E2"),
	pitch.MustParse("A2"),
	pitch.MustParse("D3"),
	pitch.MustParse("G3"),
	pitch.MustParse("B3"),
	pitch.MustParse("E4"),
}

// Position is one playable location of a pitch class.
type Position struct {
	String int        `json:"string"` // 0 = low E
	Fret   int        `json:"fret"`
	Note   pitch.Note `json:"-"`
}

// Voicing is a full six-slot fretting. Frets holds Muted, 0 (open) or a
// fret number per string; Fingers holds the suggested finger per fretted
// string (0 for open or muted).
type Voicing struct {
	Frets   [constants.NumStrings]int
	Fingers [constants.NumStrings]int
	Label   string
}

// SoundedStrings counts the strings that ring.
func (v Voicing) SoundedStrings() int {
	n := 0
	for _, f := range v.Frets {
		if f != Muted {
			n++
		}
	}
	return n
}

// Notes returns the sounding pitches low string first.
func (v Voicing) Notes() []pitch.Note {
	var out []pitch.Note
	for i, f := range v.Frets {
		if f == Muted {
			continue
		}
		out = append(out, StandardTuning[i].Transpose(f))
	}
	return out
}

// PositionsOf enumerates every fret in [0, maxFret] on every string that
// produces the pitch class.
func PositionsOf(pc int, maxFret int) []Position {
	pc = util.Mod12(pc)
	var out []Position
	for s, open := range StandardTuning {
		for fret := 0; fret <= maxFret; fret++ {
			if util.Mod12(open.PC()+fret) == pc {
				out = append(out, Position{String: s, Fret: fret, Note: open.Transpose(fret)})
			}
		}
	}
	return out
}

// fingerFor assigns a suggested finger by fret band.
func fingerFor(fret int) int {
	switch {
	case fret <= 0:
		return 0
	case fret <= 3:
		return 1
	case fret <= 5:
		return 2
	case fret <= 8:
		return 3
	default:
		return 4
	}
}

// BuildVoicing assembles a voicing greedily: each chord tone in order takes
// the lowest matching fret on the first string still free, low strings
// first. Assignment stops once three strings sound, so sevenths and
// extensions still come out as compact three-string grips. Failing to reach
// three sounded strings is ok=false, never an error.
func BuildVoicing(c chord.Chord, maxFret int) (Voicing, bool) {
	v := Voicing{Label: greedyLabel(c.Inversion())}
	for i := range v.Frets {
		v.Frets[i] = Muted
	}

	used := make(map[int]bool)
	placed := 0
	for _, note := range c.Notes() {
		if placed == 3 {
			break
		}
		if assignString(&v, used, note.PC(), maxFret) {
			placed++
		}
	}
	if placed < 3 {
		return Voicing{}, false
	}
	for i, f := range v.Frets {
		if f > 0 {
			v.Fingers[i] = fingerFor(f)
		}
	}
	return v, true
}

func assignString(v *Voicing, used map[int]bool, pc int, maxFret int) bool {
	for s := 0; s < constants.NumStrings; s++ {
		if used[s] {
			continue
		}
		fret := util.Mod12(pc - StandardTuning[s].PC())
		if fret > maxFret {
			continue
		}
		used[s] = true
		v.Frets[s] = fret
		return true
	}
	return false
}

func greedyLabel(inversion int) string {
	switch inversion {
	case 0:
		return "root position"
	case 1:
		return "1st inversion"
	case 2:
		return "2nd inversion"
	case 3:
		return "3rd inversion"
	default:
		return "inversion"
	}
}
