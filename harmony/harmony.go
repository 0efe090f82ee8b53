// Package harmony scores chords against scales and searches the catalog in
// both directions. The Engine is stateless; every method is a pure function
// of its arguments and the catalog tables.
package harmony

import (
	"errors"
	"math"
	"strconv"

	"github.com/jsphweid/fretwise/catalog"
	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
	"github.com/jsphweid/fretwise/util"
)

// ErrUnparseable is returned by Classify when the input matches neither the
// chord nor the scale grammar.
var ErrUnparseable = errors.New("unparseable input")

// Relationship values reported by the compatibility scorers.
const (
	RelNone     = "none"
	RelDiatonic = "diatonic"
	RelBorrowed = "borrowed"
	RelPartial  = "partial"
	RelParallel = "parallel"
)

type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// TonalResult is the root-gated containment score of a chord in a scale.
// MissingTones holds pitch classes; MissingNames the matching spellings.
type TonalResult struct {
	Score           int      `json:"score"`
	Relationship    string   `json:"relationship"`
	RootInScale     bool     `json:"root_in_scale"`
	AllTonesInScale bool     `json:"all_tones_in_scale"`
	MissingTones    []int    `json:"missing_tones,omitempty"`
	MissingNames    []string `json:"missing_tone_names,omitempty"`
}

// TonalCompatibility scores how well a chord sits inside a scale. The root
// gates everything: a chord whose root is not a scale tone scores zero no
// matter how many other tones overlap.
func (e *Engine) TonalCompatibility(c chord.Chord, s scale.Scale) TonalResult {
	scaleSet := s.PCSet()
	if !scaleSet[c.Root().PC()] {
		pcs, names := missingTones(c, scaleSet)
		return TonalResult{Score: 0, Relationship: RelNone, MissingTones: pcs, MissingNames: names}
	}

	chordPCs := c.PitchClasses()
	overlap := 0
	for _, pc := range chordPCs {
		if scaleSet[pc] {
			overlap++
		}
	}
	if overlap == len(chordPCs) {
		rel := RelBorrowed
		if c.Root().ClassEqual(s.Root()) {
			rel = RelDiatonic
		}
		return TonalResult{Score: 100, Relationship: rel, RootInScale: true, AllTonesInScale: true}
	}
	score := int(math.Round(100 * float64(overlap) / float64(len(chordPCs))))
	pcs, names := missingTones(c, scaleSet)
	return TonalResult{
		Score:        score,
		Relationship: RelPartial,
		RootInScale:  true,
		MissingTones: pcs,
		MissingNames: names,
	}
}

func missingTones(c chord.Chord, scaleSet map[int]bool) ([]int, []string) {
	var pcs []int
	var names []string
	for _, n := range c.Notes() {
		if !scaleSet[n.PC()] {
			pcs = append(pcs, n.PC())
			names = append(names, n.Name())
		}
	}
	return pcs, names
}

// ModalResult is the tension-based view: how much of the scale's color the
// chord leaves unsounded, how the two roots relate, the family's full set
// of color intervals and the subset the chord actually sounds.
type ModalResult struct {
	Tension        int    `json:"tension"`
	Relationship   string `json:"relationship"`
	Characteristic []int  `json:"characteristic_intervals,omitempty"`
	Matching       []int  `json:"matching_characteristic,omitempty"`
}

// ModalCompatibility measures tension as the count of scale tones absent
// from the chord, weighted and capped. Lower is a closer fit.
func (e *Engine) ModalCompatibility(c chord.Chord, s scale.Scale) ModalResult {
	chordSet := c.PCSet()
	unsounded := 0
	for pc := range s.PCSet() {
		if !chordSet[pc] {
			unsounded++
		}
	}
	tension := util.Min(constants.MaxTension, constants.TensionWeight*unsounded)

	characteristic, matching := characteristicIntervals(c, s)
	return ModalResult{
		Tension:        tension,
		Relationship:   e.modalRelationship(c, s),
		Characteristic: characteristic,
		Matching:       matching,
	}
}

func (e *Engine) modalRelationship(c chord.Chord, s scale.Scale) string {
	if c.Root().ClassEqual(s.Root()) {
		return RelParallel
	}
	for i, pc := range s.PitchClasses() {
		if pc == c.Root().PC() {
			return degreeRelationship(i + 1)
		}
	}
	return RelBorrowed
}

// characteristicIntervals returns the family's color intervals and the
// subset the chord sounds, relative to the scale root.
func characteristicIntervals(c chord.Chord, s scale.Scale) ([]int, []int) {
	family, ok := catalog.Families[s.Type()]
	if !ok {
		return nil, nil
	}
	chordSet := c.PCSet()
	var matched []int
	for _, iv := range family.Characteristic {
		if chordSet[util.Mod12(s.Root().PC()+iv)] {
			matched = append(matched, iv)
		}
	}
	return family.Characteristic, matched
}

func degreeRelationship(degree int) string {
	return "degree_" + strconv.Itoa(degree)
}

// rootAt builds a Note for a pitch class at the default octave, preferring
// sharps, the convention every search result follows.
func rootAt(pc int) pitch.Note {
	return pitch.FromPitchClass(pc, pitch.DefaultOctave)
}
