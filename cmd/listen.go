package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/d4j3y2k/keyboy/chord"
	"github.com/d4j3y2k/keyboy/cluster"
	"github.com/d4j3y2k/keyboy/constants"
	"github.com/d4j3y2k/keyboy/model"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names chords live from the first MIDI input port",
	Long:  `Names chords live from the first MIDI input port`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()

	in, err := midi.InPort(0)
	if err != nil {
		fmt.Println("can't find a MIDI input port")
		return
	}

	c := cluster.New(constants.DefaultClusterWait, func(notes model.Notes) {
		if res := chord.Analyze(notes); res != nil {
			fmt.Printf("%v  %v\n", notes, res.Display)
		}
	})

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			c.NoteOn(key)
		case msg.GetNoteEnd(&ch, &key):
			c.NoteOff(key)
		default:
			// ignore
		}
	})
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		return
	}
	defer stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
}
