package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwise/chord"
	"github.com/jsphweid/fretwise/constants"
	"github.com/jsphweid/fretwise/fretboard"
	"github.com/spf13/cobra"
)

var voicingsMaxFret int

func init() {
	voicingsCmd.Flags().IntVar(&voicingsMaxFret, "max-fret", constants.DefaultMaxFret, "highest fret to consider")
	rootCmd.AddCommand(voicingsCmd)
}

var voicingsCmd = &cobra.Command{
	Use:   "voicings <chord>",
	Short: "Print guitar voicings for a chord",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chord.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		voicings := fretboard.AllVoicings(c, voicingsMaxFret)
		if len(voicings) == 0 {
			fmt.Printf("no voicings for %s under fret %d\n", c.Symbol(), voicingsMaxFret)
			return nil
		}
		fmt.Printf("%s (%s)\n", c.Name(), c.Symbol())
		for _, v := range voicings {
			fmt.Printf("  %-22s %s\n", v.Label, formatFrets(v.Frets))
		}
		return nil
	},
}

func formatFrets(frets [constants.NumStrings]int) string {
	parts := make([]string, len(frets))
	for i, f := range frets {
		if f == fretboard.Muted {
			parts[i] = "x"
		} else {
			parts[i] = fmt.Sprintf("%d", f)
		}
	}
	return strings.Join(parts, "-")
}
