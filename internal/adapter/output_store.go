package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/makeparse/internal/model"
)

// OutputStore persists encoded results.
type OutputStore interface {
	// Write stores data at path. An empty path writes to the store's stdout.
	Write(path m.Path, data []byte) error
}

// LocalOutputStore writes results to the local filesystem.
type LocalOutputStore struct {
	stdout io.Writer
}

// NewLocalOutputStore constructs a LocalOutputStore that falls back to stdout
// when no output path is given.
func NewLocalOutputStore(stdout io.Writer) *LocalOutputStore {
	if stdout == nil {
		stdout = os.Stdout
	}

	return &LocalOutputStore{stdout: stdout}
}

// Write replaces the file at path with data. The file is written next to its
// destination first and renamed into place, so readers never see a partial
// result.
func (s *LocalOutputStore) Write(path m.Path, data []byte) error {
	if path == "" {
		_, err := s.stdout.Write(data)
		return err
	}

	dest := string(path)

	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), dest)
}
