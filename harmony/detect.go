package harmony

import (
	"math"
	"sort"

	"github.com/jsphweid/fretwise/catalog"
	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
	"github.com/jsphweid/fretwise/util"
)

// detectionOrder fixes which quality wins when a note set matches several
// templates. Triads before sevenths before extensions; the first match in
// this order is the answer.
var detectionOrder = []string{
	"maj", "min", "dim", "aug", "sus2", "sus4", "5",
	"maj7", "dom7", "min7", "dim7", "min7b5", "maj7b5", "7sus4",
	"6", "min6",
	"9", "min9", "maj9", "7b9",
	"11", "min11", "maj11", "13", "min13", "maj13",
	"6/9", "7#11",
}

// suggestionScaleTypes is the search space for SuggestScales; the exotic
// catalog entries stay out to keep suggestions playable.
var suggestionScaleTypes = []string{
	"major", "minor_natural", "minor_harmonic", "minor_melodic",
	"dorian", "phrygian", "lydian", "mixolydian",
	"pentatonic_major", "pentatonic_minor", "blues_minor",
}

// Detection is the outcome of chord detection over a raw note set. An
// unrecognized set is Detected=false, not an error.
type Detection struct {
	Detected  bool
	Chord     chord.Chord
	Inversion int
	Bass      pitch.Note
}

// DetectChord names the chord a set of MIDI notes spells. The bass pitch
// class is tried as root first so C-F-G reads as Csus4, not an inverted
// Fsus2; the lowest note also decides the inversion.
func (e *Engine) DetectChord(midiNotes []int) Detection {
	if len(midiNotes) < 2 {
		return Detection{}
	}
	sorted := make([]int, len(midiNotes))
	copy(sorted, midiNotes)
	sort.Ints(sorted)

	set := make(map[int]bool)
	for _, m := range sorted {
		set[util.Mod12(m)] = true
	}
	bass, err := pitch.FromMIDI(sorted[0])
	if err != nil {
		return Detection{}
	}
	roots := []int{bass.PC()}
	for _, pc := range util.SortedKeys(set) {
		if pc != bass.PC() {
			roots = append(roots, pc)
		}
	}

	for _, rootPC := range roots {
		for _, quality := range detectionOrder {
			reduced := catalog.ReducedIntervals(catalog.ChordIntervals[quality])
			if len(reduced) != len(set) {
				continue
			}
			if !matchesTemplate(set, rootPC, reduced) {
				continue
			}
			c, err := chord.New(rootAt(rootPC), quality)
			if err != nil {
				continue
			}
			inversion := inversionFor(c, bass.PC())
			if inversion > 0 {
				c, _ = c.Invert(inversion)
			}
			return Detection{Detected: true, Chord: c, Inversion: inversion, Bass: bass}
		}
	}
	return Detection{Bass: bass}
}

func matchesTemplate(set map[int]bool, rootPC int, intervals []int) bool {
	for _, iv := range intervals {
		if !set[util.Mod12(rootPC+iv)] {
			return false
		}
	}
	return true
}

func inversionFor(c chord.Chord, bassPC int) int {
	for i, pc := range c.PitchClasses() {
		if pc == bassPC {
			return i
		}
	}
	return 0
}

// SuggestScales ranks scales by how much of a raw note set they cover.
// Score is the covered fraction of the input, so extra scale tones are
// free but uncovered input tones cost.
func (e *Engine) SuggestScales(midiNotes []int) []ScaleSuggestion {
	set := make(map[int]bool)
	for _, m := range midiNotes {
		set[util.Mod12(m)] = true
	}
	if len(set) == 0 {
		return nil
	}

	var out []ScaleSuggestion
	for rootPC := 0; rootPC < 12; rootPC++ {
		for _, typeID := range suggestionScaleTypes {
			s, err := scale.New(rootAt(rootPC), typeID)
			if err != nil {
				continue
			}
			scaleSet := s.PCSet()
			covered := 0
			for pc := range set {
				if scaleSet[pc] {
					covered++
				}
			}
			score := int(math.Round(100 * float64(covered) / float64(len(set))))
			if score < constants.SuggestScoreThreshold {
				continue
			}
			rel := RelBorrowed
			if covered == len(set) {
				rel = RelDiatonic
			}
			out = append(out, ScaleSuggestion{
				Scale:        s,
				Score:        score,
				Source:       "suggest",
				Relationship: rel,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Scale.Root().PC() != out[j].Scale.Root().PC() {
			return out[i].Scale.Root().PC() < out[j].Scale.Root().PC()
		}
		return out[i].Scale.Type() < out[j].Scale.Type()
	})
	if len(out) > constants.SuggestLimit {
		out = out[:constants.SuggestLimit]
	}
	return out
}
