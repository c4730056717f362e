package domain

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/makeparse/internal/model"
)

func parseString(t *testing.T, content string, options ...ParserOption) (m.Targets, error) {
	t.Helper()

	return NewParser(options...).Parse("Makefile", strings.NewReader(content))
}

func TestParser_Parse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    m.Targets
	}{
		{
			name: "plain targets",
			content: `all: build test

build:
	go build -o bin/app ./cmd/app

test:
	go test ./...
`,
			want: m.Targets{
				{Name: "all", Default: true},
				{Name: "build", Output: []string{"bin/app"}},
				{Name: "test"},
			},
		},
		{
			name: "self reference follows the latest target",
			content: `OUT = dist

docs:
	mkdir -p $(OUT)/$@
site:
	@mkdir -p $(OUT)/$@ $(OUT)/assets
bin:
	cc -o $@ main.c
`,
			want: m.Targets{
				{Name: "docs", Default: true, Output: []string{"dist/docs"}},
				{Name: "site", Output: []string{"dist/assets"}},
				{Name: "bin", Output: []string{"bin"}},
			},
		},
		{
			name: "output comment wins and blocks later outputs",
			content: `app:
	# Output: release/app.tar
	mkdir -p build
	go build -o build/app
`,
			want: m.Targets{
				{Name: "app", Default: true, Output: []string{"release/app.tar"}},
			},
		},
		{
			name: "mkdir rule precedes -o on the same line",
			content: `app:
	mkdir -p logs && gcc -o app main.c
`,
			// mkdir takes its last token, even past the -o flag
			want: m.Targets{
				{Name: "app", Default: true, Output: []string{"main.c"}},
			},
		},
		{
			name: "only the first output is recorded",
			content: `gen:
	mkdir a
	mkdir b
`,
			want: m.Targets{
				{Name: "gen", Default: true, Output: []string{"a"}},
			},
		},
		{
			name: "four space indentation counts as a recipe",
			content: `out:
    mkdir build
`,
			want: m.Targets{
				{Name: "out", Default: true, Output: []string{"build"}},
			},
		},
		{
			name: "unindented commands are not outputs",
			content: `out:
mkdir build
`,
			want: m.Targets{
				{Name: "out", Default: true},
			},
		},
		{
			name: "recipe before any target is inert",
			content: `	mkdir early
first:
`,
			want: m.Targets{
				{Name: "first", Default: true},
			},
		},
		{
			name: "comments are skipped without resolution",
			content: `# uses $(UNDEFINED)
    # indented $(ALSO_UNDEFINED)
all:
	# mkdir not-an-output
	touch done
`,
			want: m.Targets{
				{Name: "all", Default: true},
			},
		},
		{
			name: "assignment operators",
			content: `CC := gcc
OPT?=-O2
LD=ld # linker
PREFIX  =  /usr/local
prog:
	$(CC) $(OPT) -o ${PREFIX}/bin/prog main.c
`,
			want: m.Targets{
				{Name: "prog", Default: true, Output: []string{"/usr/local/bin/prog"}},
			},
		},
		{
			name: "colon-equals without a space declares a target",
			content: `CC:=gcc
all:
`,
			want: m.Targets{
				{Name: "CC", Default: true},
				{Name: "all"},
			},
		},
		{
			name: "spaced colon-equals is an assignment",
			content: `DIR := out
all:
	mkdir $(DIR)
`,
			want: m.Targets{
				{Name: "all", Default: true, Output: []string{"out"}},
			},
		},
		{
			name: "later assignments win",
			content: `DIR = one
DIR = two
all:
	mkdir $(DIR)
`,
			want: m.Targets{
				{Name: "all", Default: true, Output: []string{"two"}},
			},
		},
		{
			name:    "windows line endings",
			content: "all:\r\n\tmkdir out\r\n",
			want: m.Targets{
				{Name: "all", Default: true, Output: []string{"out"}},
			},
		},
		{
			name: "names outside the target pattern are inert",
			content: `build-docs:
	mkdir docs
.PHONY: all
`,
			want: m.Targets{},
		},
		{
			name:    "empty file",
			content: "",
			want:    m.Targets{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseString(t, tt.content, WithStrict(true))
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParser_Parse_Bindings(t *testing.T) {
	parser := NewParser()

	_, err := parser.Parse("Makefile", strings.NewReader("CC := gcc\nX?=1\nLD=ld   # linker\nall:\n"))
	require.NoError(t, err)

	assert.Equal(t, Bindings{"CC": "gcc", "X": "1", "LD": "ld", "@": "all"}, parser.bindings)
}

func TestParser_Parse_OnlyFirstTargetIsDefault(t *testing.T) {
	got, err := parseString(t, "a:\nb:\nc:\n")
	require.NoError(t, err)

	def, ok := got.Default()
	require.True(t, ok)
	assert.Equal(t, "a", def.Name)

	for _, target := range got[1:] {
		assert.Falsef(t, target.Default, "%s should not be default", target.Name)
	}
}

func TestParser_Parse_StrictUndefinedVariable(t *testing.T) {
	_, err := parseString(t, "all:\n\tcp $(MISSING) out\n", WithStrict(true))

	var lineErr *LineError
	require.ErrorAs(t, err, &lineErr)
	assert.Equal(t, "Makefile", lineErr.Path)
	assert.Equal(t, 2, lineErr.Line)

	var undefined *UndefinedVariableError
	require.ErrorAs(t, err, &undefined)
	assert.Equal(t, "MISSING", undefined.Name)
	assert.Contains(t, err.Error(), "Makefile:2: line variable expansion failed: no variable 'MISSING'")
}

func TestParser_Parse_LenientSkipsUnresolvableLines(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))

	got, err := parseString(t, "all:\n\tcp $(MISSING) -o skipped\n\tmkdir kept\n", WithLogger(logger))
	require.NoError(t, err)

	want := m.Targets{{Name: "all", Default: true, Output: []string{"kept"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Parse() mismatch (-want +got):\n%s", diff)
	}

	assert.Contains(t, logs.String(), "skipping line")
	assert.Contains(t, logs.String(), "MISSING")
}

func TestParser_Parse_CrossReferencedAssignments(t *testing.T) {
	content := "A = $(B)\nB = $(A)\nall:\n\techo $(A)\n"

	t.Run("strict", func(t *testing.T) {
		_, err := parseString(t, content, WithStrict(true))

		var lineErr *LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, 1, lineErr.Line)
		assert.ErrorIs(t, err, ErrUndefinedVariable)
	})

	t.Run("lenient", func(t *testing.T) {
		got, err := parseString(t, content)
		require.NoError(t, err)

		if diff := cmp.Diff(m.Targets{{Name: "all", Default: true}}, got); diff != "" {
			t.Fatalf("Parse() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestParser_Parse_Idempotent(t *testing.T) {
	content := "V = x\nall: one\n\tmkdir $(V)/$@\none:\n\tgo build -o bin/one\n"
	parser := NewParser(WithStrict(true))

	first, err := parser.Parse("Makefile", strings.NewReader(content))
	require.NoError(t, err)

	second, err := parser.Parse("Makefile", strings.NewReader(content))
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("re-parse mismatch (-first +second):\n%s", diff)
	}

	// bindings from an earlier parse must not leak into the next one
	_, err = parser.Parse("Other", strings.NewReader("all:\n\tmkdir $(V)\n"))
	assert.ErrorIs(t, err, ErrUndefinedVariable)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestParser_Parse_ReadError(t *testing.T) {
	_, err := NewParser().Parse("broken.mk", failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read from broken.mk")
}

func TestParser_Parse_LineTooLong(t *testing.T) {
	long := "all:\n\t" + strings.Repeat("x", maxLineSize+1) + "\n"

	_, err := NewParser().Parse("long.mk", strings.NewReader(long))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read from long.mk")
}

func TestParser_ParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Makefile")
	require.NoError(t, os.WriteFile(path, []byte("all:\n\tmkdir out\n"), 0o644))

	got, err := NewParser().ParseFile(path)
	require.NoError(t, err)

	if diff := cmp.Diff(m.Targets{{Name: "all", Default: true, Output: []string{"out"}}}, got); diff != "" {
		t.Fatalf("ParseFile() mismatch (-want +got):\n%s", diff)
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := NewParser().ParseFile(filepath.Join(dir, "missing"))
		require.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "couldn't open")
	})
}

func TestParser_DebugLogging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := parseString(t, "V = 1\nall:\n\tmkdir out\n", WithLogger(logger))
	require.NoError(t, err)

	for _, want := range []string{"found target", "bound variable", "found output", "rule=mkdir"} {
		assert.Contains(t, logs.String(), want)
	}
}

func TestWithLogger_NilKeepsDefault(t *testing.T) {
	parser := NewParser(WithLogger(nil))
	require.NotNil(t, parser.logger)

	_, err := parser.Parse("Makefile", io.LimitReader(strings.NewReader("all:\n"), 100))
	assert.NoError(t, err)
}
