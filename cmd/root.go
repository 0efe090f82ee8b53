package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretwise",
	Short: "Chord and scale analysis for guitarists",
	Long:  `Analyzes chords and scales, scores their compatibility and maps voicings onto a standard-tuning fretboard.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
