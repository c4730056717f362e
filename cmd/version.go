package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"
)

// version is set at link time:
//
//	go build -ldflags "-X github.com/mouse-blink/makeparse/cmd.version=v1.2.0"
var version string

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the makeparse version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "makeparse %s\n", resolveVersion(version))
		},
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// resolveVersion returns the canonical form of v, falling back to the module
// version recorded in the binary. Anything that is not semver reads as (devel).
func resolveVersion(v string) string {
	if v == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			v = info.Main.Version
		}
	}

	if !semver.IsValid(v) {
		return "(devel)"
	}

	return semver.Canonical(v)
}
