package harmony

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
)

// Kind of a classified input.
const (
	KindChord = "chord"
	KindScale = "scale"
)

// Classification is the result of free-text analysis: exactly one of Chord
// or Scale is meaningful, selected by Kind.
type Classification struct {
	Kind  string
	Chord chord.Chord
	Scale scale.Scale
}

var scaleTextRe = regexp.MustCompile(`^([A-Ga-g](?:##|#|bb|b)?)[\s_-]+(.+)$`)

// scaleSynonyms maps the scale names people type to catalog pattern ids.
// Keys are lowercased with single spaces.
var scaleSynonyms = map[string]string{
	"major":            "major",
	"ionian":           "major",
	"minor":            "minor_natural",
	"natural minor":    "minor_natural",
	"aeolian":          "minor_natural",
	"harmonic minor":   "minor_harmonic",
	"minor harmonic":   "minor_harmonic",
	"melodic minor":    "minor_melodic",
	"minor melodic":    "minor_melodic",
	"dorian":           "dorian",
	"phrygian":         "phrygian",
	"lydian":           "lydian",
	"mixolydian":       "mixolydian",
	"locrian":          "locrian",
	"major pentatonic": "pentatonic_major",
	"pentatonic major": "pentatonic_major",
	"minor pentatonic": "pentatonic_minor",
	"pentatonic minor": "pentatonic_minor",
	"blues":            "blues_minor",
	"minor blues":      "blues_minor",
	"major blues":      "blues_major",
	"whole tone":       "whole_tone",
	"wholetone":        "whole_tone",
	"chromatic":        "chromatic",
	"diminished":       "diminished",
	"augmented":        "augmented",
}

// Classify decides whether free text names a chord or a scale. The chord
// grammar runs first, so "C major" and "A minor" are chords; scale names
// that are no chord alias ("C harmonic minor", "D dorian") fall through to
// the scale grammar.
func (e *Engine) Classify(input string) (Classification, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Classification{}, fmt.Errorf("%w: empty input", ErrUnparseable)
	}

	if c, err := chord.Parse(trimmed); err == nil {
		return Classification{Kind: KindChord, Chord: c}, nil
	}

	m := scaleTextRe.FindStringSubmatch(trimmed)
	if m == nil {
		return Classification{}, fmt.Errorf("%w: %q", ErrUnparseable, input)
	}
	root, err := pitch.Parse(m[1])
	if err != nil {
		return Classification{}, fmt.Errorf("%w: %q", ErrUnparseable, input)
	}
	typeName := normalizeScaleName(m[2])
	typeID, ok := scaleSynonyms[typeName]
	if !ok {
		return Classification{}, fmt.Errorf("%w: %q", ErrUnparseable, input)
	}
	s, err := scale.New(root, typeID)
	if err != nil {
		return Classification{}, fmt.Errorf("%w: %q", ErrUnparseable, input)
	}
	return Classification{Kind: KindScale, Scale: s}, nil
}

func normalizeScaleName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return strings.Join(strings.Fields(name), " ")
}
