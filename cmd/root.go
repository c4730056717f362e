// Package cmd provides the root command and CLI setup for makeparse.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/makeparse/internal/adapter"
	"github.com/mouse-blink/makeparse/internal/controller"
	"github.com/mouse-blink/makeparse/internal/domain"
	m "github.com/mouse-blink/makeparse/internal/model"
)

var logLevel = new(slog.LevelVar)
var logger *slog.Logger
var fsAdapter adapter.SourceFSAdapter
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

func init() {
	logLevel.Set(adapter.LogLevel(false))
	logger = adapter.NewLogger(os.Stderr, logLevel)

	// the schemas are embedded, so a failure here is a build defect
	validator, err := adapter.NewJSONSchemaValidator()
	if err != nil {
		panic(err)
	}

	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	orchestrator = domain.NewOrchestrator(fsAdapter, logger)
	workflow = domain.NewWorkflow(
		fsAdapter,
		adapter.NewLocalOutputStore(os.Stdout),
		adapter.NewLocalFileWatcher(adapter.DefaultDebounce, logger),
		validator,
		orchestrator,
		logger,
	)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var debug bool

	var flags analyzeFlags

	cmd := &cobra.Command{
		Use:   "makeparse [flags] INPUT",
		Short: "Extract targets and their outputs from a Makefile",
		Long: `makeparse reads a Makefile and prints its targets as structured data.

For every target it reports whether it is the default goal and the first
output path its recipe creates, found through a "# Output: PATH" comment,
a mkdir command or a "-o PATH" flag. Variables defined in the file are
expanded before each line is classified.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logLevel.Set(adapter.LogLevel(debug))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Analyze(flags.analyzeArgs(cmd, m.Path(args[0])))
		},
	}
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "log parsing decisions to stderr (also enabled by "+adapter.DebugEnv+")")
	flags.register(cmd)

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
