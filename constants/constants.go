package constants

// Heuristic knobs for the harmony engine. These are tuned values, not
// derived ones; changing them changes every score the engine reports.
const (
	// TensionWeight is the per-missing-tone cost in modal scoring.
	TensionWeight = 10
	MaxTension    = 100

	// TonalScoreThreshold is the minimum tonal score a scale suggestion
	// must reach to be reported.
	TonalScoreThreshold = 70

	// MergeLimit caps the separately reported tonal and modal views of
	// the combined scale search.
	MergeLimit = 5

	ModalScaleLimit    = 10
	CombinedScaleLimit = 10

	// SuggestScoreThreshold/SuggestLimit bound scale suggestion from a
	// raw note set.
	SuggestScoreThreshold = 30
	SuggestLimit          = 10
)

// Fretboard limits.
const (
	NumStrings     = 6
	DefaultMaxFret = 12
	MaxVoicings    = 8
)

// InterchangeOffsets are the semitone offsets from a chord root that the
// modal search tries as alternate scale roots, besides the root itself.
var InterchangeOffsets = []int{3, 5, 7, 8, 9}
