package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwise/harmony"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <chord or scale>",
	Short: "Classify free text as a chord or scale and analyze it",
	Long:  `Classifies input like "Cmaj7", "A minor" or "D dorian" and prints notes, compatible scales or diatonic chords.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.Join(args, " ")
		engine := harmony.NewEngine()
		res, err := engine.Classify(input)
		if err != nil {
			return err
		}
		switch res.Kind {
		case harmony.KindChord:
			printChordAnalysis(engine, res)
		case harmony.KindScale:
			printScaleAnalysis(engine, res)
		}
		return nil
	},
}

func printChordAnalysis(engine *harmony.Engine, res harmony.Classification) {
	c := res.Chord
	fmt.Printf("%s (%s)\n", c.Name(), c.Symbol())
	var names []string
	for _, n := range c.Notes() {
		names = append(names, n.String())
	}
	fmt.Printf("  notes: %s\n", strings.Join(names, " "))
	fmt.Println("  compatible scales:")
	for _, sug := range engine.CompatibleScales(c) {
		fmt.Printf("    %-28s %3d  %s/%s\n", sug.Scale.Name(), sug.Score, sug.Source, sug.Relationship)
	}
}

func printScaleAnalysis(engine *harmony.Engine, res harmony.Classification) {
	s := res.Scale
	fmt.Println(s.Name())
	var names []string
	for _, n := range s.Notes() {
		names = append(names, n.String())
	}
	fmt.Printf("  notes: %s\n", strings.Join(names, " "))
	fmt.Println("  diatonic chords:")
	for _, dc := range engine.CompatibleChords(s).Triads {
		fmt.Printf("    %-5s %-12s %s\n", dc.Numeral, dc.Chord.Symbol(), dc.Function)
	}
}
