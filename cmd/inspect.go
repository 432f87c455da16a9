package cmd

import (
	"fmt"

	"github.com/d4j3y2k/keyboy/chord"
	"github.com/d4j3y2k/keyboy/cluster"
	"github.com/d4j3y2k/keyboy/midi"
	"github.com/d4j3y2k/keyboy/util"
	"github.com/spf13/cobra"
)

var inspectMax int

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().IntVar(&inspectMax, "max", 0, "stop after this many chords (0 = all)")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Names every chord in a MIDI file",
	Long:  `Names every chord in a MIDI file`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(args[0])
	},
}

func inspect(path string) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		fmt.Printf("Skipping %v because: %v\n", path, err)
		return
	}

	chords := cluster.FromSMF(parsed)
	num := len(chords)
	if inspectMax > 0 {
		num = util.Min(num, inspectMax)
	}

	for _, tc := range chords[:num] {
		res := chord.Analyze(tc.Notes)
		if res == nil {
			continue
		}
		fmt.Printf("%8dms  %-12v %v\n", tc.OffsetMs, res.Display, tc.Notes)
	}
}
