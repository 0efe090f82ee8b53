package fretboard

import (
	"strconv"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/util"
)

// openShapes is keyed by quality then root pitch class. Only fully playable
// first-position shapes are listed; a missing entry means no open shape, the
// barre and greedy paths cover the rest.
var openShapes = map[string]map[int][constants.NumStrings]int{
	"maj": {
		0: {Muted, 3, 2, 0, 1, 0},     // C
		9: {Muted, 0, 2, 2, 2, 0},     // A
		7: {3, 2, 0, 0, 0, 3},         // G
		4: {0, 2, 2, 1, 0, 0},         // E
		2: {Muted, Muted, 0, 2, 3, 2}, // D
	},
	"min": {
		4: {0, 2, 2, 0, 0, 0},         // Em
		9: {Muted, 0, 2, 2, 1, 0},     // Am
		2: {Muted, Muted, 0, 2, 3, 1}, // Dm
	},
	"dom7": {
		4:  {0, 2, 0, 1, 0, 0},         // E7
		9:  {Muted, 0, 2, 0, 2, 0},     // A7
		2:  {Muted, Muted, 0, 2, 1, 2}, // D7
		7:  {3, 2, 0, 0, 0, 1},         // G7
		0:  {Muted, 3, 2, 3, 1, 0},     // C7
		11: {Muted, 2, 1, 2, 0, 2},     // B7
	},
}

// barreShape is a movable fretting relative to the barre fret. The root
// string carries offset 0.
type barreShape struct {
	family     string
	rootString int
	offsets    [constants.NumStrings]int
}

var barreShapes = map[string][]barreShape{
	"maj": {
		{family: "E", rootString: 0, offsets: [constants.NumStrings]int{0, 2, 2, 1, 0, 0}},
		{family: "A", rootString: 1, offsets: [constants.NumStrings]int{Muted, 0, 2, 2, 2, 0}},
	},
	"min": {
		{family: "E", rootString: 0, offsets: [constants.NumStrings]int{0, 2, 2, 0, 0, 0}},
		{family: "A", rootString: 1, offsets: [constants.NumStrings]int{Muted, 0, 2, 2, 1, 0}},
	},
	"dom7": {
		{family: "E", rootString: 0, offsets: [constants.NumStrings]int{0, 2, 0, 1, 0, 0}},
		{family: "A", rootString: 1, offsets: [constants.NumStrings]int{Muted, 0, 2, 0, 2, 0}},
	},
}

// OpenShape returns the first-position shape for the chord, if one exists.
// Enharmonic roots share entries since lookup is by pitch class.
func OpenShape(c chord.Chord) (Voicing, bool) {
	byRoot, ok := openShapes[c.Quality()]
	if !ok {
		return Voicing{}, false
	}
	frets, ok := byRoot[c.Root().PC()]
	if !ok {
		return Voicing{}, false
	}
	v := Voicing{Frets: frets, Label: "open"}
	for i, f := range v.Frets {
		if f > 0 {
			v.Fingers[i] = fingerFor(f)
		}
	}
	return v, true
}

// BarreShapes returns the movable E- and A-family shapes for the chord root.
// The barre fret is the distance from the family's open root, promoted from
// 0 to 12 so the shape stays a barre; shapes running past maxFret are
// dropped. No shape in range is an empty result.
func BarreShapes(c chord.Chord, maxFret int) []Voicing {
	shapes, ok := barreShapes[c.Quality()]
	if !ok {
		return nil
	}
	var out []Voicing
	for _, shape := range shapes {
		base := util.Mod12(c.Root().PC() - StandardTuning[shape.rootString].PC())
		if base == 0 {
			base = 12
		}
		v := Voicing{Label: shape.family + "-shape barre " + strconv.Itoa(base) + "fr"}
		fits := true
		for i, offset := range shape.offsets {
			if offset == Muted {
				v.Frets[i] = Muted
				continue
			}
			fret := base + offset
			if fret > maxFret {
				fits = false
				break
			}
			v.Frets[i] = fret
			v.Fingers[i] = fingerFor(fret)
		}
		if fits {
			out = append(out, v)
		}
	}
	return out
}

// AllVoicings collects the open shape, a greedy voicing per inversion and
// the barre shapes, deduplicated by fret array and capped.
func AllVoicings(c chord.Chord, maxFret int) []Voicing {
	var candidates []Voicing
	if open, ok := OpenShape(c); ok {
		candidates = append(candidates, open)
	}
	for _, inv := range c.AllInversions() {
		if v, ok := BuildVoicing(inv, maxFret); ok {
			candidates = append(candidates, v)
		}
	}
	candidates = append(candidates, BarreShapes(c, maxFret)...)

	seen := make(map[[constants.NumStrings]int]bool)
	var out []Voicing
	for _, v := range candidates {
		if seen[v.Frets] {
			continue
		}
		seen[v.Frets] = true
		out = append(out, v)
		if len(out) == constants.MaxVoicings {
			break
		}
	}
	return out
}
