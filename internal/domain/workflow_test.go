package domain_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/makeparse/internal/adapter"
	adaptermocks "github.com/mouse-blink/makeparse/internal/adapter/mocks"
	"github.com/mouse-blink/makeparse/internal/domain"
	domainmocks "github.com/mouse-blink/makeparse/internal/domain/mocks"
	m "github.com/mouse-blink/makeparse/internal/model"
)

type workflowDeps struct {
	fs        *adaptermocks.MockSourceFSAdapter
	store     *adaptermocks.MockOutputStore
	watcher   *adaptermocks.MockFileWatcher
	validator *adaptermocks.MockSchemaValidator
	orch      *domainmocks.MockOrchestrator
	logs      *bytes.Buffer
}

func newTestWorkflow(t *testing.T) (domain.Workflow, workflowDeps) {
	t.Helper()

	deps := workflowDeps{
		fs:        adaptermocks.NewMockSourceFSAdapter(t),
		store:     adaptermocks.NewMockOutputStore(t),
		watcher:   adaptermocks.NewMockFileWatcher(t),
		validator: adaptermocks.NewMockSchemaValidator(t),
		orch:      domainmocks.NewMockOrchestrator(t),
		logs:      &bytes.Buffer{},
	}

	logger := slog.New(slog.NewTextHandler(deps.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	wf := domain.NewWorkflow(deps.fs, deps.store, deps.watcher, deps.validator, deps.orch, logger)

	return wf, deps
}

func sampleMakefile(path m.Path) m.Makefile {
	return m.Makefile{
		Path: path,
		Targets: m.Targets{
			{Name: "all", Default: true},
			{Name: "build", Output: []string{"bin/app"}},
			{Name: "clean"},
		},
	}
}

// capture records the bytes passed to a store write.
func capture(dst *[]byte) func(m.Path, []byte) error {
	return func(_ m.Path, data []byte) error {
		*dst = data
		return nil
	}
}

func TestWorkflow_Analyze(t *testing.T) {
	t.Run("writes json to the requested output", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).Return(sampleMakefile("Makefile"), nil)

		var written []byte
		deps.store.EXPECT().Write(m.Path("targets.json"), mock.Anything).RunAndReturn(capture(&written))

		err := wf.Analyze(domain.AnalyzeArgs{Input: "Makefile", Output: "targets.json"})
		require.NoError(t, err)

		var got m.Targets
		require.NoError(t, json.Unmarshal(written, &got))
		assert.Equal(t, []string{"all", "build", "clean"}, got.Names())
		assert.Nil(t, got[0].Output)
	})

	t.Run("strict json output is validated", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).Return(sampleMakefile("Makefile"), nil)
		deps.validator.EXPECT().Validate(adapter.TargetsSchema, mock.Anything).Return(nil)
		deps.store.EXPECT().Write(m.Path(""), mock.Anything).Return(nil)

		require.NoError(t, wf.Analyze(domain.AnalyzeArgs{Input: "Makefile", Strict: true}))
	})

	t.Run("strict validation failure stops the write", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		invalid := errors.New("result does not match targets")
		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).Return(sampleMakefile("Makefile"), nil)
		deps.validator.EXPECT().Validate(adapter.TargetsSchema, mock.Anything).Return(invalid)

		err := wf.Analyze(domain.AnalyzeArgs{Input: "Makefile", Strict: true})
		assert.ErrorIs(t, err, invalid)
	})

	t.Run("yaml output skips validation", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).Return(sampleMakefile("Makefile"), nil)

		var written []byte
		deps.store.EXPECT().Write(m.Path(""), mock.Anything).RunAndReturn(capture(&written))

		require.NoError(t, wf.Analyze(domain.AnalyzeArgs{Input: "Makefile", Format: m.FormatYAML, Strict: true}))
		assert.Contains(t, string(written), "name: build")
	})

	t.Run("passes strictness and filter to the orchestrator", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).
			Run(func(_ m.Path, opts domain.ProcessOptions) {
				assert.True(t, opts.Strict)
				assert.False(t, opts.Hash)
				require.NotNil(t, opts.Filter)
				assert.False(t, opts.Filter.Keep("clean"))
				assert.True(t, opts.Filter.Keep("all"))
			}).
			Return(m.Makefile{Path: "Makefile", Targets: m.Targets{}}, nil)
		deps.validator.EXPECT().Validate(adapter.TargetsSchema, mock.Anything).Return(nil)
		deps.store.EXPECT().Write(m.Path(""), mock.Anything).Return(nil)

		args := domain.AnalyzeArgs{
			FilterArgs: domain.FilterArgs{Exclude: []string{"^clean$"}},
			Input:      "Makefile",
			Strict:     true,
		}
		require.NoError(t, wf.Analyze(args))
	})

	t.Run("unsupported format fails before parsing", func(t *testing.T) {
		wf, _ := newTestWorkflow(t)

		err := wf.Analyze(domain.AnalyzeArgs{Input: "Makefile", Format: "toml"})
		assert.ErrorContains(t, err, "unsupported format")
	})

	t.Run("invalid pattern in strict mode", func(t *testing.T) {
		wf, _ := newTestWorkflow(t)

		args := domain.AnalyzeArgs{
			FilterArgs: domain.FilterArgs{Include: []string{"("}},
			Input:      "Makefile",
			Strict:     true,
		}
		err := wf.Analyze(args)
		assert.ErrorIs(t, err, domain.ErrInvalidPattern)
	})

	t.Run("processing errors propagate", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		lineErr := &domain.LineError{Path: "Makefile", Line: 3, Err: &domain.UndefinedVariableError{Name: "CC"}}
		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).Return(m.Makefile{}, lineErr)

		err := wf.Analyze(domain.AnalyzeArgs{Input: "Makefile", Strict: true})
		assert.ErrorIs(t, err, domain.ErrUndefinedVariable)
	})
}

func TestWorkflow_Scan(t *testing.T) {
	t.Run("parses every file and writes sorted results", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		files := []m.Path{"/src/lib/rules.mk", "/src/Makefile"}
		deps.fs.EXPECT().FindMakefiles([]m.Path{"/src/..."}, []string{"*.mk", "Makefile"}).Return(files, nil)

		for _, file := range files {
			makefile := sampleMakefile(file)
			makefile.Hash = "feed"
			deps.orch.EXPECT().ProcessMakefile(file, mock.Anything).
				Run(func(_ m.Path, opts domain.ProcessOptions) {
					assert.True(t, opts.Hash)
				}).
				Return(makefile, nil)
		}

		var written []byte
		deps.store.EXPECT().Write(m.Path("scan.json"), mock.Anything).RunAndReturn(capture(&written))

		results, err := wf.Scan(context.Background(), domain.ScanArgs{
			Paths:   []m.Path{"/src/..."},
			Match:   []string{"*.mk", "Makefile"},
			Threads: 2,
			Output:  "scan.json",
		})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, m.Path("/src/Makefile"), results[0].Path)

		var got []m.Makefile
		require.NoError(t, json.Unmarshal(written, &got))
		require.Len(t, got, 2)
		assert.Equal(t, m.Path("/src/Makefile"), got[0].Path)
		assert.Equal(t, m.Path("/src/lib/rules.mk"), got[1].Path)
		assert.Equal(t, "feed", got[0].Hash)
	})

	t.Run("defaults to the current directory", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.fs.EXPECT().FindMakefiles([]m.Path{"."}, []string(nil)).Return([]m.Path{}, nil)
		deps.validator.EXPECT().Validate(adapter.MakefilesSchema, mock.Anything).Return(nil)

		var written []byte
		deps.store.EXPECT().Write(m.Path(""), mock.Anything).RunAndReturn(capture(&written))

		results, err := wf.Scan(context.Background(), domain.ScanArgs{Strict: true})
		require.NoError(t, err)
		assert.Empty(t, results)
		assert.Equal(t, "[]\n", string(written))
	})

	t.Run("summary returns results without writing", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.fs.EXPECT().FindMakefiles(mock.Anything, mock.Anything).Return([]m.Path{"/src/Makefile"}, nil)
		deps.orch.EXPECT().ProcessMakefile(m.Path("/src/Makefile"), mock.Anything).Return(sampleMakefile("/src/Makefile"), nil)

		// an unknown format is irrelevant when nothing is encoded
		results, err := wf.Scan(context.Background(), domain.ScanArgs{Summary: true, Format: "toml"})
		require.NoError(t, err)
		assert.Equal(t, []m.Makefile{sampleMakefile("/src/Makefile")}, results)
	})

	t.Run("discovery errors are wrapped", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.fs.EXPECT().FindMakefiles(mock.Anything, mock.Anything).Return(nil, errors.New("root path error: missing"))

		_, err := wf.Scan(context.Background(), domain.ScanArgs{})
		assert.ErrorContains(t, err, "find makefiles: root path error")
	})

	t.Run("a failing file aborts the scan", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		boom := errors.New("couldn't open /src/b.mk")
		deps.fs.EXPECT().FindMakefiles(mock.Anything, mock.Anything).Return([]m.Path{"/src/a.mk", "/src/b.mk"}, nil)
		deps.orch.EXPECT().ProcessMakefile(m.Path("/src/a.mk"), mock.Anything).Return(sampleMakefile("/src/a.mk"), nil).Maybe()
		deps.orch.EXPECT().ProcessMakefile(m.Path("/src/b.mk"), mock.Anything).Return(m.Makefile{}, boom)

		_, err := wf.Scan(context.Background(), domain.ScanArgs{Threads: 1})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("cancelled context stops before parsing", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		deps.fs.EXPECT().FindMakefiles(mock.Anything, mock.Anything).Return([]m.Path{"/src/Makefile"}, nil)

		_, err := wf.Scan(ctx, domain.ScanArgs{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestWorkflow_Show(t *testing.T) {
	t.Run("writes the selected target", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).Return(sampleMakefile("Makefile"), nil)

		var written []byte
		deps.store.EXPECT().Write(m.Path(""), mock.Anything).RunAndReturn(capture(&written))

		require.NoError(t, wf.Show(domain.ShowArgs{Input: "Makefile", Target: "build"}))

		var got m.Target
		require.NoError(t, json.Unmarshal(written, &got))
		assert.Equal(t, m.Target{Name: "build", Output: []string{"bin/app"}}, got)
	})

	t.Run("unknown target suggests a close name", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).Return(sampleMakefile("Makefile"), nil)

		err := wf.Show(domain.ShowArgs{Input: "Makefile", Target: "buidl"})

		var notFound *domain.TargetNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "build", notFound.Suggestion)
		assert.ErrorIs(t, err, domain.ErrTargetNotFound)
		assert.EqualError(t, err, `no target "buidl" in Makefile (did you mean "build"?)`)
	})
}

func TestWorkflow_View(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	makefile := sampleMakefile("Makefile")
	deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).Return(makefile, nil)

	targets, err := wf.View(domain.ViewArgs{Input: "Makefile"})
	require.NoError(t, err)
	assert.Equal(t, makefile.Targets, targets)
}

func TestWorkflow_Watch(t *testing.T) {
	t.Run("lenient watch logs failures and keeps going", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).
			Return(m.Makefile{}, errors.New("couldn't open Makefile")).Once()
		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).
			Return(sampleMakefile("Makefile"), nil).Once()
		deps.store.EXPECT().Write(m.Path("out.json"), mock.Anything).Return(nil).Once()

		deps.watcher.EXPECT().Watch(mock.Anything, m.Path("Makefile"), mock.Anything).
			RunAndReturn(func(_ context.Context, _ m.Path, onChange func() error) error {
				return onChange()
			})

		args := domain.WatchArgs{AnalyzeArgs: domain.AnalyzeArgs{Input: "Makefile", Output: "out.json"}}
		require.NoError(t, wf.Watch(context.Background(), args))

		assert.Contains(t, deps.logs.String(), "analysis failed")
		assert.Contains(t, deps.logs.String(), "analysis updated")
	})

	t.Run("strict watch fails on the first analysis", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		boom := errors.New("couldn't open Makefile")
		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).Return(m.Makefile{}, boom)

		args := domain.WatchArgs{AnalyzeArgs: domain.AnalyzeArgs{Input: "Makefile", Strict: true}}
		assert.ErrorIs(t, wf.Watch(context.Background(), args), boom)
	})

	t.Run("watcher errors propagate", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.orch.EXPECT().ProcessMakefile(m.Path("Makefile"), mock.Anything).Return(sampleMakefile("Makefile"), nil)
		deps.store.EXPECT().Write(m.Path(""), mock.Anything).Return(nil)

		watchErr := errors.New("failed to watch Makefile")
		deps.watcher.EXPECT().Watch(mock.Anything, m.Path("Makefile"), mock.Anything).Return(watchErr)

		args := domain.WatchArgs{AnalyzeArgs: domain.AnalyzeArgs{Input: "Makefile"}}
		assert.ErrorIs(t, wf.Watch(context.Background(), args), watchErr)
	})
}

func TestWorkflow_Schema(t *testing.T) {
	tests := []struct {
		name   string
		scan   bool
		schema adapter.SchemaName
	}{
		{name: "targets", schema: adapter.TargetsSchema},
		{name: "scan", scan: true, schema: adapter.MakefilesSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf, deps := newTestWorkflow(t)

			source := []byte(`{"$id":"makeparse://schemas/x"}`)
			deps.validator.EXPECT().Source(tt.schema).Return(source, nil)
			deps.store.EXPECT().Write(m.Path("schema.json"), source).Return(nil)

			require.NoError(t, wf.Schema(domain.SchemaArgs{Scan: tt.scan, Output: "schema.json"}))
		})
	}
}
