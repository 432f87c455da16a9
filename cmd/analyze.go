package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/d4j3y2k/keyboy/chord"
	"github.com/d4j3y2k/keyboy/model"
	"github.com/spf13/cobra"
)

var analyzeAsJSON bool

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeAsJSON, "json", false, "print the full analysis as JSON")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <midi note numbers>",
	Short: "Names the chord for a set of MIDI note numbers",
	Long:  `Names the chord for a set of MIDI note numbers, e.g. "keyboy analyze 60 64 67".`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(args)
	},
}

func analyze(args []string) {
	var notes model.Notes
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 0 || n > 127 {
			panic("Not a MIDI note number: " + arg)
		}
		notes = append(notes, uint8(n))
	}

	res := chord.Analyze(notes)
	if analyzeAsJSON {
		if err := json.NewEncoder(os.Stdout).Encode(res); err != nil {
			panic("Could not encode analysis because: " + err.Error())
		}
		return
	}
	fmt.Println(res.Display)
}
