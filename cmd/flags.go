package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/makeparse/internal/domain"
	m "github.com/mouse-blink/makeparse/internal/model"
)

// filterFlags holds the repeatable target name patterns.
type filterFlags struct {
	exclude []string
	include []string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.exclude, "filter", "f", nil, "drop targets whose name matches regex (can be repeated)")
	cmd.Flags().StringArrayVarP(&f.include, "include", "i", nil, "keep only targets whose name matches regex (can be repeated)")
}

// filterArgs leaves a set nil unless its flag was given, so an unused flag
// disables its filter stage.
func (f *filterFlags) filterArgs(cmd *cobra.Command) domain.FilterArgs {
	var args domain.FilterArgs

	if cmd.Flags().Changed("filter") {
		args.Exclude = f.exclude
	}

	if cmd.Flags().Changed("include") {
		args.Include = f.include
	}

	return args
}

// analyzeFlags are shared by every command that analyzes a single Makefile.
type analyzeFlags struct {
	filterFlags
	output string
	format string
	strict bool
}

func (f *analyzeFlags) register(cmd *cobra.Command) {
	f.filterFlags.register(cmd)
	registerOutputFlags(cmd, &f.output, &f.format)
	registerStrictFlag(cmd, &f.strict)
}

func (f *analyzeFlags) analyzeArgs(cmd *cobra.Command, input m.Path) domain.AnalyzeArgs {
	return domain.AnalyzeArgs{
		FilterArgs: f.filterArgs(cmd),
		Input:      input,
		Output:     m.Path(f.output),
		Format:     m.Format(f.format),
		Strict:     f.strict,
	}
}

func registerOutputFlags(cmd *cobra.Command, output, format *string) {
	cmd.Flags().StringVarP(output, "output", "o", "", "write the result to FILE instead of stdout")
	cmd.Flags().StringVarP(format, "format", "F", string(m.FormatJSON), "result format: json, yaml or cbor")
}

func registerStrictFlag(cmd *cobra.Command, strict *bool) {
	cmd.Flags().BoolVarP(strict, "strict", "s", false, "fail on undefined variables and invalid patterns instead of skipping them")
}
