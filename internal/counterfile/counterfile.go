// Package counterfile reads and writes the digit-encoded history file.
package counterfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/verte-zerg/moodcount/internal/history"
	"github.com/verte-zerg/moodcount/internal/model"
)

// Load reads and decodes the counter file. A missing file yields no events
// and no error.
func Load(path string) ([]model.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	cats, err := history.Decode(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return cats, nil
}

// Save overwrites the counter file with every event in log.
func Save(path string, log *history.Log) error {
	return WriteEncoded(path, log.Encode())
}

// WriteEncoded replaces the file at path with data using a temp file and
// rename, so readers never observe a partial write.
func WriteEncoded(path, data string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create counter dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, ".counter-*")
	if err != nil {
		return fmt.Errorf("failed to create temp counter file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.WriteString(data); err != nil {
		return fmt.Errorf("failed to write counter file: %w", err)
	}
	if err := tmpFile.Chmod(0o644); err != nil {
		return fmt.Errorf("failed to chmod counter file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close counter file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace counter file: %w", err)
	}
	return nil
}
