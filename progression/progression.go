// Package progression holds an ordered chord sequence and infers its key by
// scoring every candidate tonic against the whole sequence.
package progression

import (
	"errors"
	"sort"
	"strings"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/harmony"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
)

// ErrEmpty is returned when a progression is built from no chords.
var ErrEmpty = errors.New("empty progression")

// keyCandidates are the scale types tried as keys.
var keyCandidates = []string{"major", "minor_natural"}

// Progression is an immutable chord sequence.
type Progression struct {
	chords []chord.Chord
}

// New builds a progression; at least one chord is required.
func New(chords []chord.Chord) (Progression, error) {
	if len(chords) == 0 {
		return Progression{}, ErrEmpty
	}
	own := make([]chord.Chord, len(chords))
	copy(own, chords)
	return Progression{chords: own}, nil
}

// ParseSymbols builds a progression from chord symbols like
// ["C", "Am", "F", "G7"].
func ParseSymbols(symbols []string) (Progression, error) {
	var chords []chord.Chord
	for _, sym := range symbols {
		c, err := chord.Parse(sym)
		if err != nil {
			return Progression{}, err
		}
		chords = append(chords, c)
	}
	return New(chords)
}

// Chords returns the sequence in order.
func (p Progression) Chords() []chord.Chord {
	out := make([]chord.Chord, len(p.chords))
	copy(out, p.chords)
	return out
}

// Len returns the number of chords.
func (p Progression) Len() int { return len(p.chords) }

// String renders the sequence as dash-joined symbols.
func (p Progression) String() string {
	syms := make([]string, len(p.chords))
	for i, c := range p.chords {
		syms[i] = c.Symbol()
	}
	return strings.Join(syms, " - ")
}

// Key is an inferred key with a confidence in [0,1]: the mean tonal score
// of the chords against the key scale, normalized.
type Key struct {
	Scale      scale.Scale
	Confidence float64
}

// InferKey picks the major or natural-minor key whose scale the whole
// sequence fits best, by summed tonal score. Relative keys share a pitch
// set and always tie on score, so chords rooted on the tonic break the
// tie; remaining ties go to the lower root pitch class, major first.
func (p Progression) InferKey(engine *harmony.Engine) Key {
	type candidate struct {
		s      scale.Scale
		total  int
		tonics int
	}
	var candidates []candidate
	for rootPC := 0; rootPC < 12; rootPC++ {
		for _, typeID := range keyCandidates {
			s, err := scale.New(rootOf(rootPC), typeID)
			if err != nil {
				continue
			}
			total, tonics := 0, 0
			for _, c := range p.chords {
				total += engine.TonalCompatibility(c, s).Score
				if c.Root().ClassEqual(s.Root()) {
					tonics++
				}
			}
			candidates = append(candidates, candidate{s: s, total: total, tonics: tonics})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].total != candidates[j].total {
			return candidates[i].total > candidates[j].total
		}
		return candidates[i].tonics > candidates[j].tonics
	})
	best := candidates[0]
	return Key{
		Scale:      best.s,
		Confidence: float64(best.total) / float64(100*len(p.chords)),
	}
}

func rootOf(pc int) pitch.Note {
	return pitch.FromPitchClass(pc, pitch.DefaultOctave)
}
