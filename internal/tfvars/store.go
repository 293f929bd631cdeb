package tfvars

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store reads and writes one variables file on disk. The file is the
// durable source of truth: every Load parses fresh content and nothing is
// cached between calls.
type Store struct {
	Path string
}

// NewStore returns a Store bound to path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load parses the current file content. A missing file is not an error:
// the console may be pointed at a template that has not been configured
// yet, which reads as an empty variable set.
func (s *Store) Load() (*File, error) {
	content, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewFile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}
	return Parse(string(content)), nil
}

// Save serializes the file and replaces the on-disk content atomically,
// writing a sibling temp file and renaming it over the target so a crash
// mid-write never leaves a half-written variables file.
func (s *Store) Save(f *File) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(f.Serialize()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.Path, err)
	}
	return nil
}
