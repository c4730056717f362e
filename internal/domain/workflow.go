package domain

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/makeparse/internal/adapter"
	m "github.com/mouse-blink/makeparse/internal/model"
)

// DefaultThreads is the scan worker count used when none is given.
const DefaultThreads = 4

// FilterArgs holds the user supplied target name patterns. A nil slice
// disables its stage.
type FilterArgs struct {
	Exclude []string
	Include []string
}

// AnalyzeArgs configures the analysis of a single Makefile.
type AnalyzeArgs struct {
	FilterArgs
	Input  m.Path
	Output m.Path // empty writes to stdout
	Format m.Format
	Strict bool
}

// ScanArgs configures a multi-file scan.
type ScanArgs struct {
	FilterArgs
	Paths   []m.Path
	Match   []string // file-name globs, defaults to adapter.DefaultMakefilePatterns
	Threads int
	Output  m.Path
	Format  m.Format
	Strict  bool
	Summary bool // return the results without encoding or writing them
}

// ShowArgs selects one target of a Makefile.
type ShowArgs struct {
	FilterArgs
	Input  m.Path
	Target string
	Output m.Path
	Format m.Format
	Strict bool
}

// ViewArgs selects the targets to browse.
type ViewArgs struct {
	FilterArgs
	Input  m.Path
	Strict bool
}

// WatchArgs re-runs an analysis whenever its input changes.
type WatchArgs struct {
	AnalyzeArgs
}

// SchemaArgs selects the published result schema.
type SchemaArgs struct {
	Scan   bool // the scan result schema instead of the target list schema
	Output m.Path
}

// Workflow defines the operations exposed by the makeparse CLI.
type Workflow interface {
	Analyze(args AnalyzeArgs) error
	Scan(ctx context.Context, args ScanArgs) ([]m.Makefile, error)
	Show(args ShowArgs) error
	View(args ViewArgs) (m.Targets, error)
	Watch(ctx context.Context, args WatchArgs) error
	Schema(args SchemaArgs) error
}

type workflow struct {
	fsAdapter adapter.SourceFSAdapter
	store     adapter.OutputStore
	watcher   adapter.FileWatcher
	validator adapter.SchemaValidator
	orch      Orchestrator
	logger    *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	store adapter.OutputStore,
	watcher adapter.FileWatcher,
	validator adapter.SchemaValidator,
	orch Orchestrator,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter: fsAdapter,
		store:     store,
		watcher:   watcher,
		validator: validator,
		orch:      orch,
		logger:    logger,
	}
}

// Analyze parses one Makefile and writes its filtered targets.
func (w *workflow) Analyze(args AnalyzeArgs) error {
	encoder, err := adapter.NewEncoder(args.Format)
	if err != nil {
		return err
	}

	makefile, err := w.process(args.Input, args.FilterArgs, args.Strict)
	if err != nil {
		return err
	}

	return w.emit(encoder, adapter.TargetsSchema, makefile.Targets, args.Output, args.Strict)
}

// Scan discovers Makefiles under the given roots and parses them in parallel.
// The sorted results are returned; unless args.Summary is set they are also
// encoded and written.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) ([]m.Makefile, error) {
	var encoder adapter.Encoder

	if !args.Summary {
		var err error

		encoder, err = adapter.NewEncoder(args.Format)
		if err != nil {
			return nil, err
		}
	}

	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	files, err := w.fsAdapter.FindMakefiles(paths, args.Match)
	if err != nil {
		return nil, fmt.Errorf("find makefiles: %w", err)
	}

	filter, err := NewFilter(args.Exclude, args.Include, args.Strict, w.logger)
	if err != nil {
		return nil, err
	}

	threads := args.Threads
	if threads <= 0 {
		threads = DefaultThreads
	}

	w.logger.Debug("scanning", "files", len(files), "threads", threads)

	results := make([]m.Makefile, len(files))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, file := range files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			makefile, err := w.orch.ProcessMakefile(file, ProcessOptions{
				Strict: args.Strict,
				Filter: filter,
				Hash:   true,
			})
			if err != nil {
				return err
			}

			results[i] = makefile

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b m.Makefile) int {
		return strings.Compare(string(a.Path), string(b.Path))
	})

	if args.Summary {
		return results, nil
	}

	if err := w.emit(encoder, adapter.MakefilesSchema, results, args.Output, args.Strict); err != nil {
		return nil, err
	}

	return results, nil
}

// Show writes the single target named by args.Target.
func (w *workflow) Show(args ShowArgs) error {
	encoder, err := adapter.NewEncoder(args.Format)
	if err != nil {
		return err
	}

	makefile, err := w.process(args.Input, args.FilterArgs, args.Strict)
	if err != nil {
		return err
	}

	target, ok := makefile.Targets.Find(args.Target)
	if !ok {
		return &TargetNotFoundError{
			Name:       args.Target,
			Path:       string(args.Input),
			Suggestion: suggestTarget(args.Target, makefile.Targets.Names()),
		}
	}

	data, err := encoder.Encode(target)
	if err != nil {
		return err
	}

	return w.store.Write(args.Output, data)
}

// View returns the filtered targets for display.
func (w *workflow) View(args ViewArgs) (m.Targets, error) {
	makefile, err := w.process(args.Input, args.FilterArgs, args.Strict)
	if err != nil {
		return nil, err
	}

	return makefile.Targets, nil
}

// Watch runs Analyze once and again after every change to the input, until
// ctx is done. Outside strict mode a failed analysis is logged and the watch
// goes on.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	run := func() error {
		if err := w.Analyze(args.AnalyzeArgs); err != nil {
			if args.Strict {
				return err
			}

			w.logger.Error("analysis failed", "file", string(args.Input), "error", err)

			return nil
		}

		w.logger.Info("analysis updated", "file", string(args.Input))

		return nil
	}

	if err := run(); err != nil {
		return err
	}

	return w.watcher.Watch(ctx, args.Input, run)
}

// Schema writes the JSON Schema describing the result documents.
func (w *workflow) Schema(args SchemaArgs) error {
	name := adapter.TargetsSchema
	if args.Scan {
		name = adapter.MakefilesSchema
	}

	data, err := w.validator.Source(name)
	if err != nil {
		return err
	}

	return w.store.Write(args.Output, data)
}

func (w *workflow) process(input m.Path, filterArgs FilterArgs, strict bool) (m.Makefile, error) {
	filter, err := NewFilter(filterArgs.Exclude, filterArgs.Include, strict, w.logger)
	if err != nil {
		return m.Makefile{}, err
	}

	return w.orch.ProcessMakefile(input, ProcessOptions{Strict: strict, Filter: filter})
}

// emit encodes v and writes it. Strict JSON output is checked against its
// schema first.
func (w *workflow) emit(encoder adapter.Encoder, schema adapter.SchemaName, v any, output m.Path, strict bool) error {
	data, err := encoder.Encode(v)
	if err != nil {
		return err
	}

	if strict && encoder.Format() == m.FormatJSON {
		if err := w.validator.Validate(schema, data); err != nil {
			return err
		}
	}

	return w.store.Write(output, data)
}
