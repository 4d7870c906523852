package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/sebastian/model"
	"github.com/jsphweid/sebastian/notes"
	"github.com/jsphweid/sebastian/pipeline"
	"github.com/jsphweid/sebastian/sequence"
	"github.com/jsphweid/sebastian/transform"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Prints lilypond notes",
	Long:  `Runs a pipeline file and prints the lilypond token of every point, in order.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(RenderFile(args[0], cmd.OutOrStdout()))
	},
}

func RenderFile(path string, w io.Writer) error {
	doc, err := pipeline.LoadFile(path)
	if err != nil {
		return err
	}
	seq, err := pipeline.Run(doc)
	if err != nil {
		return err
	}
	line, err := renderLilypond(seq)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, line)
	return err
}

// renderLilypond fills in any missing tokens and joins them with spaces.
func renderLilypond(seq sequence.OSequence) (string, error) {
	seq, err := seq.Apply(transform.Lilypond(notes.Fifths{}))
	if err != nil {
		return "", err
	}
	tokens := make([]string, 0, len(seq))
	for _, p := range seq {
		tokens = append(tokens, fmt.Sprint(p.Get(model.Lilypond, "")))
	}
	return strings.Join(tokens, " "), nil
}
