package harmony

import (
	"sort"

	"github.com/jsphweid/fretwise/catalog"
	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/scale"
	"github.com/jsphweid/fretwise/util"
)

// ScaleSuggestion is one entry of a scale search result. Score carries the
// tonal score for tonal entries and (100 - tension) for modal ones, so both
// sort the same direction.
type ScaleSuggestion struct {
	Scale        scale.Scale
	Score        int
	Source       string // "tonal" or "modal"
	Relationship string
}

// romanNumerals by degree, uppercased/lowercased per quality when rendered.
var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII"}

// degreeFunctions are the classical function names by degree.
var degreeFunctions = []string{
	"Tonic", "Supertonic", "Mediant", "Subdominant",
	"Dominant", "Submediant", "Leading Tone",
}

// TonalScales suggests scales rooted at the chord root from the per-quality
// compatibility table, keeping only strong matches. Table entries the
// catalog does not know are skipped, never fatal.
func (e *Engine) TonalScales(c chord.Chord) []ScaleSuggestion {
	base := baseQuality(c)
	var out []ScaleSuggestion
	for _, typeID := range catalog.ChordScaleCompatibility[base] {
		s, err := scale.New(c.Root(), typeID)
		if err != nil {
			continue
		}
		res := e.TonalCompatibility(c, s)
		if res.Score < constants.TonalScoreThreshold {
			continue
		}
		out = append(out, ScaleSuggestion{
			Scale:        s,
			Score:        res.Score,
			Source:       "tonal",
			Relationship: res.Relationship,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Scale.Type() < out[j].Scale.Type()
	})
	return out
}

// ModalScales searches every family pattern over the chord root and its
// interchange offsets, ranked by ascending tension.
func (e *Engine) ModalScales(c chord.Chord) []ScaleSuggestion {
	roots := []int{c.Root().PC()}
	for _, offset := range constants.InterchangeOffsets {
		roots = append(roots, util.Mod12(c.Root().PC()+offset))
	}

	var out []ScaleSuggestion
	for _, familyID := range util.SortedKeys(catalog.Families) {
		for _, rootPC := range roots {
			s, err := scale.New(rootAt(rootPC), familyID)
			if err != nil {
				continue
			}
			res := e.ModalCompatibility(c, s)
			out = append(out, ScaleSuggestion{
				Scale:        s,
				Score:        constants.MaxTension - res.Tension,
				Source:       "modal",
				Relationship: res.Relationship,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Scale.Type() < out[j].Scale.Type()
	})
	if len(out) > constants.ModalScaleLimit {
		out = out[:constants.ModalScaleLimit]
	}
	return out
}

// ScaleSearch groups the scale suggestions for a chord: the strongest
// tonal and modal entries as separate views plus the merged ranking.
type ScaleSearch struct {
	Tonal  []ScaleSuggestion
	Modal  []ScaleSuggestion
	Merged []ScaleSuggestion
}

// SearchScales runs both searches. The merged view dedups the full tonal
// list against the modal top ten by root and pattern, tonal entries winning
// duplicates, so low-ranked modal entries still surface when the tonal list
// is short; the Tonal and Modal views are capped afterwards.
func (e *Engine) SearchScales(c chord.Chord) ScaleSearch {
	tonal := e.TonalScales(c)
	modal := e.ModalScales(c)

	seen := make(map[string]bool)
	var merged []ScaleSuggestion
	for _, sug := range append(append([]ScaleSuggestion{}, tonal...), modal...) {
		key := sug.Scale.Root().Name() + "|" + sug.Scale.Type()
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, sug)
		if len(merged) == constants.CombinedScaleLimit {
			break
		}
	}

	if len(tonal) > constants.MergeLimit {
		tonal = tonal[:constants.MergeLimit]
	}
	if len(modal) > constants.MergeLimit {
		modal = modal[:constants.MergeLimit]
	}
	return ScaleSearch{Tonal: tonal, Modal: modal, Merged: merged}
}

// CompatibleScales returns the merged view of SearchScales.
func (e *Engine) CompatibleScales(c chord.Chord) []ScaleSuggestion {
	return e.SearchScales(c).Merged
}

// DegreeChord is a diatonic chord annotated with its degree, Roman numeral
// and classical function.
type DegreeChord struct {
	Chord    chord.Chord
	Degree   int
	Numeral  string
	Function string
}

// ChordsForScale holds the diatonic chords of a scale.
type ChordsForScale struct {
	Triads   []DegreeChord
	Sevenths []DegreeChord
}

// CompatibleChords returns the diatonic triads of a scale with Roman
// numerals and functions, plus the seventh chords whose tones all belong to
// the scale. Degrees that stack into no catalog quality are skipped.
func (e *Engine) CompatibleChords(s scale.Scale) ChordsForScale {
	var res ChordsForScale
	scaleSet := s.PCSet()

	for degree := 1; degree <= s.Len(); degree++ {
		triad, err := s.TriadAt(degree)
		if err != nil {
			continue
		}
		res.Triads = append(res.Triads, DegreeChord{
			Chord:    triad,
			Degree:   degree,
			Numeral:  numeralFor(degree, triad.Quality()),
			Function: functionFor(degree),
		})

		seventh, err := s.SeventhAt(degree)
		if err != nil {
			continue
		}
		if subset(seventh.PCSet(), scaleSet) {
			res.Sevenths = append(res.Sevenths, DegreeChord{
				Chord:    seventh,
				Degree:   degree,
				Numeral:  numeralFor(degree, seventh.Quality()) + "7",
				Function: functionFor(degree),
			})
		}
	}
	return res
}

func numeralFor(degree int, quality string) string {
	if degree < 1 || degree > len(romanNumerals) {
		return ""
	}
	numeral := romanNumerals[degree-1]
	switch {
	case quality == "dim" || quality == "dim7" || quality == "min7b5":
		return lowercase(numeral) + "°"
	case quality == "min" || quality == "min7":
		return lowercase(numeral)
	case quality == "aug":
		return numeral + "+"
	}
	return numeral
}

func lowercase(numeral string) string {
	out := []rune(numeral)
	for i, r := range out {
		out[i] = r + ('i' - 'I')
	}
	return string(out)
}

func functionFor(degree int) string {
	if degree < 1 || degree > len(degreeFunctions) {
		return ""
	}
	return degreeFunctions[degree-1]
}

func subset(inner, outer map[int]bool) bool {
	for pc := range inner {
		if !outer[pc] {
			return false
		}
	}
	return true
}

// baseQuality maps any catalog quality onto the compatibility table's keys
// by looking at the reduced intervals when there is no exact entry.
func baseQuality(c chord.Chord) string {
	q := c.Quality()
	if _, ok := catalog.ChordScaleCompatibility[q]; ok {
		return q
	}
	set := make(map[int]bool)
	for _, iv := range catalog.ReducedIntervals(c.Intervals()) {
		set[iv] = true
	}
	switch {
	case set[3] && set[6] && set[9]:
		return "dim7"
	case set[3] && set[6] && set[10]:
		return "min7b5"
	case set[3] && set[6]:
		return "dim"
	case set[4] && set[8]:
		return "aug"
	case set[4] && set[10]:
		return "dom7"
	case set[4] && set[11]:
		return "maj7"
	case set[3] && set[10]:
		return "min7"
	case set[3]:
		return "min"
	default:
		return "maj"
	}
}
