package domain

import (
	"fmt"
	"log/slog"

	"github.com/mouse-blink/makeparse/internal/adapter"
	m "github.com/mouse-blink/makeparse/internal/model"
)

// ProcessOptions tune a single Makefile analysis.
type ProcessOptions struct {
	Strict bool
	// Filter is applied to the parsed targets when set.
	Filter *Filter
	// Hash fills Makefile.Hash with the file fingerprint.
	Hash bool
}

// Orchestrator runs the per-file pipeline: read the Makefile, parse it with a
// fresh Parser, filter the targets and optionally fingerprint the file.
type Orchestrator interface {
	ProcessMakefile(path m.Path, opts ProcessOptions) (m.Makefile, error)
}

type orchestrator struct {
	fsAdapter adapter.SourceFSAdapter
	logger    *slog.Logger
}

// NewOrchestrator constructs an Orchestrator backed by the provided
// filesystem adapter.
func NewOrchestrator(fsAdapter adapter.SourceFSAdapter, logger *slog.Logger) Orchestrator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &orchestrator{
		fsAdapter: fsAdapter,
		logger:    logger,
	}
}

func (o *orchestrator) ProcessMakefile(path m.Path, opts ProcessOptions) (makefile m.Makefile, err error) {
	file, err := o.fsAdapter.Open(path)
	if err != nil {
		return m.Makefile{}, fmt.Errorf("couldn't open %s: %w", path, err)
	}

	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	parser := NewParser(
		WithStrict(opts.Strict),
		WithLogger(o.logger.With("file", string(path))),
	)

	targets, err := parser.Parse(string(path), file)
	if err != nil {
		return m.Makefile{}, err
	}

	if opts.Filter != nil {
		targets = opts.Filter.Apply(targets)
	}

	makefile = m.Makefile{Path: path, Targets: targets}

	if opts.Hash {
		hash, err := o.fsAdapter.HashFile(path)
		if err != nil {
			return m.Makefile{}, fmt.Errorf("failed to hash %s: %w", path, err)
		}

		makefile.Hash = hash
	}

	o.logger.Debug("processed makefile", "file", string(path), "targets", len(targets))

	return makefile, nil
}
