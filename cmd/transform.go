package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/sebastian/constants"
	"github.com/jsphweid/sebastian/midi"
	"github.com/jsphweid/sebastian/pipeline"
	"github.com/jsphweid/sebastian/sequence"
	"github.com/spf13/cobra"
)

var (
	outPath string
	asMidi  bool
)

func init() {
	transformCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file; .mid writes a MIDI file, anything else JSON")
	transformCmd.Flags().BoolVar(&asMidi, "midi", false, "write a MIDI file into the out dir")
	rootCmd.AddCommand(transformCmd)
}

var transformCmd = &cobra.Command{
	Use:   "transform FILE",
	Short: "Runs a pipeline file",
	Long:  `Runs the steps of a YAML or JSON pipeline file over its points.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := TransformFile(args[0], outPath, asMidi, cmd.OutOrStdout())
		cobra.CheckErr(err)
		if path != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %v\n", path)
		}
	},
}

// TransformFile runs the pipeline at in and writes the result. It returns
// the path written to, or "" when the result went to stdout.
func TransformFile(in, out string, toMidi bool, stdout io.Writer) (string, error) {
	doc, err := pipeline.LoadFile(in)
	if err != nil {
		return "", err
	}
	seq, err := pipeline.Run(doc)
	if err != nil {
		return "", err
	}

	if out == "" && toMidi {
		dir := constants.GetOutDir()
		if err := os.MkdirAll(dir, 0777); err != nil {
			return "", err
		}
		out = filepath.Join(dir, uuid.New().String()+".mid")
	}

	switch {
	case out == "":
		return "", writeJSON(stdout, seq)
	case strings.HasSuffix(out, ".mid") || strings.HasSuffix(out, ".midi"):
		return out, midi.WriteFile(out, seq)
	}

	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return out, writeJSON(f, seq)
}

func writeJSON(w io.Writer, seq sequence.OSequence) error {
	if seq == nil {
		seq = sequence.OSequence{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(seq)
}
