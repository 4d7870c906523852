package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/sebastian/constants"
	"github.com/spf13/cobra"
)

var watchOut string

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "output file, as for transform")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch FILE",
	Short: "Re-runs a pipeline file when it changes",
	Long:  `Watches a pipeline file and runs it again every time it is saved.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := Watch(ctx, args[0], constants.GetPollInterval(), func() {
			runWatched(args[0], watchOut, cmd.OutOrStdout())
		})
		cobra.CheckErr(err)
	},
}

func runWatched(in, out string, stdout io.Writer) {
	path, err := TransformFile(in, out, false, stdout)
	if err != nil {
		slog.Error("pipeline failed", "file", in, "error", err)
		return
	}
	slog.Info("pipeline ran", "file", in, "out", path)
}

// Watch calls onChange once at start and then after every burst of
// modifications to path, until ctx is done.
func Watch(ctx context.Context, path string, interval time.Duration, onChange func()) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	lastMod := info.ModTime()
	onChange()

	debounced := debounce.New(constants.WatchDebounce)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				// editors often replace the file on save
				continue
			}
			if info.ModTime().Equal(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			debounced(onChange)
		}
	}
}
