package cmd

import (
	"fmt"

	"github.com/d4j3y2k/keyboy/chord"
	"github.com/d4j3y2k/keyboy/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(patternsCmd)
}

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Reports on the chord pattern catalog",
	Long:  `Reports on the chord pattern catalog`,
	Run: func(cmd *cobra.Command, args []string) {
		patterns()
	},
}

func patterns() {
	byPriority := make(map[int]int)
	numOmit5th := 0

	for _, p := range chord.Patterns {
		byPriority[p.Priority] += 1
		if p.AllowOmit5th {
			numOmit5th += 1
		}
		name := p.Name
		if name == "" {
			name = "(major)"
		}
		fmt.Printf("%-10v priority=%-3d omit5th=%-6v intervals=%v\n",
			name, p.Priority, p.AllowOmit5th, p.Intervals)
	}

	fmt.Printf("\ntotal patterns: %v\n", len(chord.Patterns))
	fmt.Printf("allow omit 5th: %v\n", numOmit5th)
	for _, priority := range util.GetKeysSorted(byPriority) {
		fmt.Printf("priority %v: %v patterns\n", priority, byPriority[priority])
	}
}
