package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sebastian",
	Short: "Transforms symbolic music",
	Long:  `Runs pipelines of transforms (transpose, reverse, dynamics, ...) over sequences of notes.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
