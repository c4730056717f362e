package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/makeparse/internal/domain"
	m "github.com/mouse-blink/makeparse/internal/model"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "show INPUT TARGET",
		Short: "Print a single target of a Makefile",
		Long: `Print the target named TARGET from INPUT.

When no target has that name the command fails and suggests the closest
known target, if any.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Show(domain.ShowArgs{
				FilterArgs: flags.filterArgs(cmd),
				Input:      m.Path(args[0]),
				Target:     args[1],
				Output:     m.Path(flags.output),
				Format:     m.Format(flags.format),
				Strict:     flags.strict,
			})
		},
	}
	flags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}
