// Package catalog holds the static interval tables everything else is built
// from: scale patterns, chord qualities and the family metadata the harmony
// engine scores against. All tables are read-only after init; they are shared
// by reference and never mutated at runtime.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownPattern is returned for a scale type id not in the catalog.
	ErrUnknownPattern = errors.New("unknown scale pattern")
	// ErrUnknownQuality is returned for a chord quality id not in the catalog.
	ErrUnknownQuality = errors.New("unknown chord quality")
)

// ScaleIntervals maps canonical scale ids to semitone offsets from the root.
// Offsets are unique and lie in [0,12); 0 is always present.
var ScaleIntervals = map[string][]int{
	"major":            {0, 2, 4, 5, 7, 9, 11},
	"ionian":           {0, 2, 4, 5, 7, 9, 11},
	"minor_natural":    {0, 2, 3, 5, 7, 8, 10},
	"aeolian":          {0, 2, 3, 5, 7, 8, 10},
	"minor_harmonic":   {0, 2, 3, 5, 7, 8, 11},
	"minor_melodic":    {0, 2, 3, 5, 7, 9, 11},
	"dorian":           {0, 2, 3, 5, 7, 9, 10},
	"phrygian":         {0, 1, 3, 5, 7, 8, 10},
	"lydian":           {0, 2, 4, 6, 7, 9, 11},
	"mixolydian":       {0, 2, 4, 5, 7, 9, 10},
	"locrian":          {0, 1, 3, 5, 6, 8, 10},
	"pentatonic_major": {0, 2, 4, 7, 9},
	"pentatonic_minor": {0, 3, 5, 7, 10},
	"blues_major":      {0, 2, 3, 4, 7, 9},
	"blues_minor":      {0, 3, 5, 6, 7, 10},
	"whole_tone":       {0, 2, 4, 6, 8, 10},
	"chromatic":        {0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	"diminished":       {0, 2, 3, 5, 6, 8, 9, 11},
	"augmented":        {0, 3, 4, 7, 8, 11},
}

// ScaleNames maps scale ids to display names.
var ScaleNames = map[string]string{
	"major":            "Major (Ionian)",
	"ionian":           "Major (Ionian)",
	"minor_natural":    "Natural Minor (Aeolian)",
	"aeolian":          "Natural Minor (Aeolian)",
	"minor_harmonic":   "Harmonic Minor",
	"minor_melodic":    "Melodic Minor",
	"dorian":           "Dorian",
	"phrygian":         "Phrygian",
	"lydian":           "Lydian",
	"mixolydian":       "Mixolydian",
	"locrian":          "Locrian",
	"pentatonic_major": "Major Pentatonic",
	"pentatonic_minor": "Minor Pentatonic",
	"blues_major":      "Major Blues",
	"blues_minor":      "Minor Blues",
	"whole_tone":       "Whole Tone",
	"chromatic":        "Chromatic",
	"diminished":       "Diminished",
	"augmented":        "Augmented",
}

// ChordIntervals maps canonical quality ids to semitone offsets from the
// root. Extensions keep values >= 12; ReducedIntervals gives the mod-12 view.
var ChordIntervals = map[string][]int{
	"maj":    {0, 4, 7},
	"min":    {0, 3, 7},
	"dim":    {0, 3, 6},
	"aug":    {0, 4, 8},
	"sus2":   {0, 2, 7},
	"sus4":   {0, 5, 7},
	"5":      {0, 7},
	"maj7":   {0, 4, 7, 11},
	"dom7":   {0, 4, 7, 10},
	"min7":   {0, 3, 7, 10},
	"dim7":   {0, 3, 6, 9},
	"min7b5": {0, 3, 6, 10},
	"maj7b5": {0, 4, 6, 11},
	"7sus4":  {0, 5, 7, 10},
	"7b9":    {0, 4, 7, 10, 13},
	"9":      {0, 4, 7, 10, 14},
	"min9":   {0, 3, 7, 10, 14},
	"maj9":   {0, 4, 7, 11, 14},
	"11":     {0, 4, 7, 10, 14, 17},
	"min11":  {0, 3, 7, 10, 14, 17},
	"maj11":  {0, 4, 7, 11, 14, 17},
	"13":     {0, 4, 7, 10, 14, 21},
	"min13":  {0, 3, 7, 10, 14, 21},
	"maj13":  {0, 4, 7, 11, 14, 21},
	"6":      {0, 4, 7, 9},
	"min6":   {0, 3, 7, 9},
	"6/9":    {0, 4, 7, 9, 14},
	"7#11":   {0, 4, 7, 10, 18},
}

// ChordNames maps quality ids to display names.
var ChordNames = map[string]string{
	"maj": "Major", "min": "Minor", "dim": "Diminished", "aug": "Augmented",
	"sus2": "Suspended 2nd", "sus4": "Suspended 4th", "5": "5th",
	"maj7": "Major 7th", "dom7": "Dominant 7th", "min7": "Minor 7th",
	"dim7": "Diminished 7th", "min7b5": "Minor 7th Flat 5",
	"maj7b5": "Major 7th Flat 5", "7sus4": "7th Suspended 4th",
	"7b9": "7th Flat 9", "9": "9th", "min9": "Minor 9th", "maj9": "Major 9th",
	"11": "11th", "min11": "Minor 11th", "maj11": "Major 11th",
	"13": "13th", "min13": "Minor 13th", "maj13": "Major 13th",
	"6": "6th", "min6": "Minor 6th", "6/9": "6/9", "7#11": "7th Sharp 11",
}

// QualityAliases normalizes the suffixes people actually type to canonical
// quality ids. Lookup is done after lowercasing.
var QualityAliases = map[string]string{
	"m": "min", "minor": "min", "major": "maj",
	"diminished": "dim", "augmented": "aug",
	"sus": "sus4",
	"7":   "dom7", "dom": "dom7",
	"major7": "maj7", "minor7": "min7", "m7": "min7",
	"m7b5": "min7b5",
	"m9":   "min9", "m11": "min11", "m13": "min13", "m6": "min6",
	"7sus": "7sus4",
	"add9": "9", "add11": "11", "add13": "13",
}

// Family describes a scale family the modal engine searches: its degrees and
// the characteristic color intervals that define the mode's sound.
type Family struct {
	Name           string
	Degrees        []int
	Characteristic []int
}

// Families is the modal search space. Not every catalog scale is a family;
// this is the set the modal-interchange search iterates.
var Families = map[string]Family{
	"major":            {Name: "Major (Ionian)", Degrees: []int{0, 2, 4, 5, 7, 9, 11}, Characteristic: []int{4, 11}},
	"minor_natural":    {Name: "Natural Minor (Aeolian)", Degrees: []int{0, 2, 3, 5, 7, 8, 10}, Characteristic: []int{3, 10}},
	"minor_harmonic":   {Name: "Harmonic Minor", Degrees: []int{0, 2, 3, 5, 7, 8, 11}, Characteristic: []int{3, 8, 11}},
	"minor_melodic":    {Name: "Melodic Minor", Degrees: []int{0, 2, 3, 5, 7, 9, 11}, Characteristic: []int{3, 9, 11}},
	"dorian":           {Name: "Dorian", Degrees: []int{0, 2, 3, 5, 7, 9, 10}, Characteristic: []int{3, 10}},
	"phrygian":         {Name: "Phrygian", Degrees: []int{0, 1, 3, 5, 7, 8, 10}, Characteristic: []int{1, 8}},
	"lydian":           {Name: "Lydian", Degrees: []int{0, 2, 4, 6, 7, 9, 11}, Characteristic: []int{6, 11}},
	"mixolydian":       {Name: "Mixolydian", Degrees: []int{0, 2, 4, 5, 7, 9, 10}, Characteristic: []int{4, 10}},
	"pentatonic_major": {Name: "Major Pentatonic", Degrees: []int{0, 2, 4, 7, 9}},
	"pentatonic_minor": {Name: "Minor Pentatonic", Degrees: []int{0, 3, 5, 7, 10}},
}

// ChordScaleCompatibility maps a base chord quality to the scale ids worth
// trying for a tonal match. Ids not present in ScaleIntervals are skipped by
// the search, never a hard error.
var ChordScaleCompatibility = map[string][]string{
	"maj":    {"major", "lydian", "mixolydian", "pentatonic_major"},
	"min":    {"minor_natural", "dorian", "phrygian", "pentatonic_minor"},
	"dim":    {"minor_harmonic", "locrian", "diminished"},
	"aug":    {"lydian", "whole_tone", "augmented"},
	"dom7":   {"mixolydian", "dorian", "phrygian", "lydian_dom"},
	"maj7":   {"major", "lydian", "ionian"},
	"min7":   {"dorian", "minor_natural", "phrygian"},
	"min7b5": {"locrian", "phrygian"},
	"dim7":   {"locrian", "diminished"},
}

// ScalePattern resolves a scale id to its interval pattern.
func ScalePattern(id string) ([]int, error) {
	pattern, ok := ScaleIntervals[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, id)
	}
	return pattern, nil
}

// ChordQuality resolves a quality id (or alias) to its canonical id and
// interval pattern.
func ChordQuality(id string) (string, []int, error) {
	q := strings.ToLower(id)
	if canonical, ok := QualityAliases[q]; ok {
		q = canonical
	}
	pattern, ok := ChordIntervals[q]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownQuality, id)
	}
	return q, pattern, nil
}

// ScaleName returns the display name for a scale id, falling back to the id.
func ScaleName(id string) string {
	if name, ok := ScaleNames[strings.ToLower(id)]; ok {
		return name
	}
	return id
}

// ReducedIntervals reduces a chord pattern mod 12 for scale comparison,
// deduplicating (a 13th folds onto the 6th).
func ReducedIntervals(pattern []int) []int {
	seen := make(map[int]bool, len(pattern))
	var out []int
	for _, iv := range pattern {
		r := ((iv % 12) + 12) % 12
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}
