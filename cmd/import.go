package cmd

import (
	"github.com/goccy/go-yaml"
	"github.com/jsphweid/sebastian/midi"
	"github.com/jsphweid/sebastian/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import FILE.mid",
	Short: "Converts a MIDI file into a pipeline file",
	Long:  `Reads the notes of a MIDI file and prints them as a pipeline document with no steps.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, err := midi.ReadMidiFile(args[0])
		cobra.CheckErr(err)
		seq, err := midi.ToSequence(s)
		cobra.CheckErr(err)

		doc := model.TransformRequestBody{Points: seq, Steps: []any{}}
		data, err := yaml.Marshal(doc)
		cobra.CheckErr(err)
		_, err = cmd.OutOrStdout().Write(data)
		cobra.CheckErr(err)
	},
}
