// Package adapter contains infrastructure adapters for the makeparse CLI.
package adapter

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"golang.org/x/crypto/blake2b"

	m "github.com/mouse-blink/makeparse/internal/model"
)

// DefaultMakefilePatterns are the file-name globs a scan matches when the
// caller gives none.
var DefaultMakefilePatterns = []string{"Makefile", "makefile", "GNUmakefile", "*.mk"}

// SourceFSAdapter is the filesystem seen by the domain layer: it reads,
// discovers and fingerprints Makefiles, so workflows can be tested against
// mocks instead of a real tree.
type SourceFSAdapter interface {
	// Open returns a reader over the file at path. The caller closes it.
	Open(path m.Path) (io.ReadCloser, error)

	// FindMakefiles collects files under roots whose base name matches one of
	// the glob patterns. A root ending in /... is walked recursively; a root
	// naming a file is returned as is. Results are absolute, de-duplicated and
	// sorted.
	FindMakefiles(roots []m.Path, patterns []string) ([]m.Path, error)

	// Walk visits root and, when recursive, its subdirectories. VCS and
	// dependency directories are never entered.
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// HashFile returns a stable fingerprint (blake2b-256, hex) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo stats path. A scan root naming a file is taken as is.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc is called for each path visited by Walk.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the SourceFSAdapter backed by the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter returns an adapter over the local disk.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Open opens the file at path for reading.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - reading the user's Makefile is the point
	return os.Open(string(path))
}

// FindMakefiles collects Makefiles for the provided roots.
func (a *LocalSourceFSAdapter) FindMakefiles(roots []m.Path, patterns []string) ([]m.Path, error) {
	if len(roots) == 0 {
		return []m.Path{}, nil
	}

	matchers, err := compileGlobs(patterns)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	var found []m.Path

	add := func(path string) {
		if _, exists := seen[path]; exists {
			return
		}

		seen[path] = struct{}{}
		found = append(found, m.Path(path))
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			add(rootPath)

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() || !matchesAny(matchers, filepath.Base(path)) {
				return nil
			}

			add(path)

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })

	return found, nil
}

func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && path != rootStr {
			if !recursive || skippedDir(info.Name()) {
				return filepath.SkipDir
			}
		}

		return fn(path, info, nil)
	})
}

// HashFile returns the blake2b-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	if len(patterns) == 0 {
		patterns = DefaultMakefilePatterns
	}

	matchers := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid match pattern %q: %w", pattern, err)
		}

		matchers = append(matchers, g)
	}

	return matchers, nil
}

func matchesAny(matchers []glob.Glob, name string) bool {
	for _, g := range matchers {
		if g.Match(name) {
			return true
		}
	}

	return false
}

// skippedDir reports directories that never hold a project's own Makefiles.
func skippedDir(name string) bool {
	return name == ".git" || name == "vendor" || name == "node_modules"
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if rootStr == "..." {
		return ".", true
	}

	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}
