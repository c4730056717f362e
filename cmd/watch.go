package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/makeparse/internal/domain"
	m "github.com/mouse-blink/makeparse/internal/model"
)

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "watch INPUT",
		Short: "Re-run the analysis whenever a Makefile changes",
		Long: `Analyze INPUT once, then again every time it is saved, until interrupted.

Failed analyses are logged and the watch goes on, unless --strict is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Watch(cmd.Context(), domain.WatchArgs{
				AnalyzeArgs: flags.analyzeArgs(cmd, m.Path(args[0])),
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
