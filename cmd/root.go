package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keyboy",
	Short: "Chord recognition for MIDI keyboards",
	Long:  `Names whatever chord is being played: root, quality, bass and enharmonically correct spelling.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
