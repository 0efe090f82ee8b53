// Package model holds the JSON shapes of the HTTP API and the converters
// from the core types into them. The core packages never import model.
package model

import (
	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/fretboard"
	"github.com/jsphweid/fretwise/harmony"
	"github.com/jsphweid/fretwise/pitch"
	"github.com/jsphweid/fretwise/scale"
)

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type Note struct {
	Name      string  `json:"name"`
	Octave    int     `json:"octave"`
	PC        int     `json:"pitch_class"`
	MIDI      int     `json:"midi"`
	Frequency float64 `json:"frequency"`
}

type Chord struct {
	Symbol       string `json:"symbol"`
	Root         string `json:"root"`
	Quality      string `json:"quality"`
	Name         string `json:"name"`
	Inversion    int    `json:"inversion"`
	Notes        []Note `json:"notes"`
	Intervals    []int  `json:"intervals"`
	PitchClasses []int  `json:"pitch_classes"`
}

type Scale struct {
	Name         string `json:"name"`
	Root         string `json:"root"`
	Type         string `json:"type"`
	Notes        []Note `json:"notes"`
	Pattern      []int  `json:"pattern"`
	PitchClasses []int  `json:"pitch_classes"`
}

type DegreeChord struct {
	Degree   int    `json:"degree"`
	Numeral  string `json:"numeral"`
	Function string `json:"function"`
	Chord    Chord  `json:"chord"`
}

type ChordsForScale struct {
	Scale    Scale         `json:"scale"`
	Triads   []DegreeChord `json:"triads"`
	Sevenths []DegreeChord `json:"sevenths"`
}

type Compatibility struct {
	Chord Chord               `json:"chord"`
	Scale Scale               `json:"scale"`
	Tonal harmony.TonalResult `json:"tonal"`
	Modal harmony.ModalResult `json:"modal"`
}

type ScaleSuggestion struct {
	Scale        Scale  `json:"scale"`
	Score        int    `json:"score"`
	Source       string `json:"source"`
	Relationship string `json:"relationship"`
}

type Voicing struct {
	Frets   []int    `json:"frets"`
	Fingers []int    `json:"fingers"`
	Label   string   `json:"label"`
	Notes   []string `json:"notes"`
}

type VoicingsResponse struct {
	Chord    Chord     `json:"chord"`
	Voicings []Voicing `json:"voicings"`
}

type InversionsResponse struct {
	Chord      Chord   `json:"chord"`
	Inversions []Chord `json:"inversions"`
}

type AnalyzerResponse struct {
	Input            string            `json:"input"`
	Kind             string            `json:"kind"`
	Chord            *Chord            `json:"chord,omitempty"`
	Scale            *Scale            `json:"scale,omitempty"`
	ScaleSuggestions []ScaleSuggestion `json:"scale_suggestions,omitempty"`
	DiatonicChords   *ChordsForScale   `json:"diatonic_chords,omitempty"`
}

type RealtimeRequest struct {
	Notes []int `json:"notes"`
}

type DetectResponse struct {
	Detected  bool   `json:"detected"`
	Chord     *Chord `json:"chord,omitempty"`
	Inversion int    `json:"inversion"`
	Bass      string `json:"bass,omitempty"`
}

type SuggestResponse struct {
	Suggestions []ScaleSuggestion `json:"suggestions"`
}

func NewNote(n pitch.Note) Note {
	return Note{
		Name:      n.Name(),
		Octave:    n.Octave(),
		PC:        n.PC(),
		MIDI:      n.MIDI(),
		Frequency: n.Frequency(),
	}
}

func NewChord(c chord.Chord) Chord {
	notes := make([]Note, 0, len(c.Notes()))
	for _, n := range c.Notes() {
		notes = append(notes, NewNote(n))
	}
	return Chord{
		Symbol:       c.Symbol(),
		Root:         c.Root().Name(),
		Quality:      c.Quality(),
		Name:         c.Name(),
		Inversion:    c.Inversion(),
		Notes:        notes,
		Intervals:    c.Intervals(),
		PitchClasses: c.PitchClasses(),
	}
}

func NewScale(s scale.Scale) Scale {
	notes := make([]Note, 0, len(s.Notes()))
	for _, n := range s.Notes() {
		notes = append(notes, NewNote(n))
	}
	return Scale{
		Name:         s.Name(),
		Root:         s.Root().Name(),
		Type:         s.Type(),
		Notes:        notes,
		Pattern:      s.Pattern(),
		PitchClasses: s.PitchClasses(),
	}
}

func NewDegreeChord(dc harmony.DegreeChord) DegreeChord {
	return DegreeChord{
		Degree:   dc.Degree,
		Numeral:  dc.Numeral,
		Function: dc.Function,
		Chord:    NewChord(dc.Chord),
	}
}

func NewChordsForScale(s scale.Scale, cfs harmony.ChordsForScale) ChordsForScale {
	out := ChordsForScale{Scale: NewScale(s)}
	for _, dc := range cfs.Triads {
		out.Triads = append(out.Triads, NewDegreeChord(dc))
	}
	for _, dc := range cfs.Sevenths {
		out.Sevenths = append(out.Sevenths, NewDegreeChord(dc))
	}
	return out
}

func NewScaleSuggestions(sugs []harmony.ScaleSuggestion) []ScaleSuggestion {
	out := make([]ScaleSuggestion, 0, len(sugs))
	for _, sug := range sugs {
		out = append(out, ScaleSuggestion{
			Scale:        NewScale(sug.Scale),
			Score:        sug.Score,
			Source:       sug.Source,
			Relationship: sug.Relationship,
		})
	}
	return out
}

func NewVoicing(v fretboard.Voicing) Voicing {
	notes := make([]string, 0, v.SoundedStrings())
	for _, n := range v.Notes() {
		notes = append(notes, n.String())
	}
	return Voicing{
		Frets:   v.Frets[:],
		Fingers: v.Fingers[:],
		Label:   v.Label,
		Notes:   notes,
	}
}
