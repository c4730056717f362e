package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/makeparse/internal/adapter"
	"github.com/mouse-blink/makeparse/internal/domain"
	m "github.com/mouse-blink/makeparse/internal/model"
)

const scanLongDescription = `Scan directories for Makefiles and extract the targets of each one.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b.mk     scan a directory and a single file

Files are matched by base name against --match globs (default: Makefile,
makefile, GNUmakefile, *.mk). Results are sorted by path and carry a
blake2b-256 hash of each file.`

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

type scanFlags struct {
	filterFlags
	match    []string
	parallel int
	output   string
	format   string
	strict   bool
	summary  bool
}

func newScanCmd() *cobra.Command {
	var flags scanFlags

	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Extract targets from every Makefile under the given paths",
		Long:  scanLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := workflow.Scan(cmd.Context(), domain.ScanArgs{
				FilterArgs: flags.filterArgs(cmd),
				Paths:      parsePaths(args),
				Match:      flags.match,
				Threads:    flags.parallel,
				Output:     m.Path(flags.output),
				Format:     m.Format(flags.format),
				Strict:     flags.strict,
				Summary:    flags.summary,
			})
			if err != nil {
				return err
			}

			if flags.summary {
				return ui.DisplayScan(results)
			}

			return nil
		},
	}
	flags.filterFlags.register(cmd)
	cmd.Flags().StringArrayVarP(&flags.match, "match", "m", nil, "file name glob selecting Makefiles (can be repeated, default "+defaultMatchHelp()+")")
	cmd.Flags().IntVarP(&flags.parallel, "parallel", "p", domain.DefaultThreads, "number of files parsed in parallel")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a table of the scanned files instead of the full result")
	registerOutputFlags(cmd, &flags.output, &flags.format)
	registerStrictFlag(cmd, &flags.strict)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func defaultMatchHelp() string {
	return strings.Join(adapter.DefaultMakefilePatterns, ", ")
}
