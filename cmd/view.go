package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/makeparse/internal/domain"
	m "github.com/mouse-blink/makeparse/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	var flags filterFlags

	var strict bool

	cmd := &cobra.Command{
		Use:   "view INPUT",
		Short: "Browse the targets of a Makefile",
		Long:  "Browse the targets of a Makefile in an interactive list, or print them as a table when stdout is not a terminal.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := m.Path(args[0])

			targets, err := workflow.View(domain.ViewArgs{
				FilterArgs: flags.filterArgs(cmd),
				Input:      input,
				Strict:     strict,
			})
			if err != nil {
				return err
			}

			return ui.DisplayTargets(input, targets)
		},
	}
	flags.register(cmd)
	registerStrictFlag(cmd, &strict)

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
