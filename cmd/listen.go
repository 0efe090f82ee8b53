package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/fretwise/harmony"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var listenPortIndex int

func init() {
	listenCmd.Flags().IntVar(&listenPortIndex, "port-index", 0, "MIDI input port index")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Name chords played on a MIDI input in real time",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(listenPortIndex)
	},
}

func listen(portIndex int) error {
	defer midi.CloseDriver()

	in, err := midi.InPort(portIndex)
	if err != nil {
		return fmt.Errorf("no MIDI input at index %d: %w", portIndex, err)
	}

	engine := harmony.NewEngine()
	var mu sync.Mutex
	held := make(map[uint8]bool)

	// hold off until the player has finished placing fingers
	debounced := debounce.New(150 * time.Millisecond)
	analyze := func() {
		mu.Lock()
		notes := make([]int, 0, len(held))
		for key := range held {
			notes = append(notes, int(key))
		}
		mu.Unlock()
		if len(notes) == 0 {
			return
		}
		report(engine, notes)
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			held[key] = true
			mu.Unlock()
			debounced(analyze)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(held, key)
			mu.Unlock()
			debounced(analyze)
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	fmt.Printf("listening on %s, ctrl-c to quit\n", in.String())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}

func report(engine *harmony.Engine, notes []int) {
	det := engine.DetectChord(notes)
	if det.Detected {
		fmt.Printf("%s (bass %s)\n", det.Chord.Symbol(), det.Bass.String())
	} else {
		fmt.Printf("no chord for %v\n", notes)
	}
	for i, sug := range engine.SuggestScales(notes) {
		if i == 3 {
			break
		}
		fmt.Printf("  try %s (%d)\n", sug.Scale.Name(), sug.Score)
	}
}
