package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"citylaw/internal/domain"
)

// OutputFileStore writes the files of a static build under a root directory.
// A build writes into a staging directory next to the root; Commit swaps it
// in and Discard drops it, so a failed build leaves the published tree as it
// was. Writes are atomic per file and safe for concurrent use.
type OutputFileStore struct {
	root    string
	staging string
	mu      sync.RWMutex // Stage, Commit and Discard exclude writers
}

// NewOutputFileStore returns an OutputFileStore rooted at dir.
func NewOutputFileStore(dir string) *OutputFileStore { return &OutputFileStore{root: dir} }

// Root returns the output directory.
func (s *OutputFileStore) Root() string { return s.root }

// Stage starts a new, empty staging directory. Writes go there until Commit
// or Discard. A previous uncommitted stage is dropped.
func (s *OutputFileStore) Stage() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	root := filepath.Clean(s.root)
	if s.root == "" || root == "/" || root == "." {
		return fmt.Errorf("refusing to stage output directory %q", s.root)
	}
	if err := s.dropLocked(); err != nil {
		return err
	}
	parent := filepath.Dir(root)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return err
	}
	dir, err := os.MkdirTemp(parent, "."+filepath.Base(root)+".staging-*")
	if err != nil {
		return err
	}
	if err := os.Chmod(dir, 0o755); err != nil {
		_ = os.RemoveAll(dir)
		return err
	}
	s.staging = dir
	return nil
}

// Commit replaces the output directory with the staged tree.
func (s *OutputFileStore) Commit() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.staging == "" {
		return errors.New("commit output: nothing staged")
	}
	prev := s.staging + ".prev"
	hadRoot := true
	if err := os.Rename(s.root, prev); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("commit output: %w", err)
		}
		hadRoot = false
	}
	if err := os.Rename(s.staging, s.root); err != nil {
		if hadRoot {
			_ = os.Rename(prev, s.root)
		}
		return fmt.Errorf("commit output: %w", err)
	}
	s.staging = ""
	if hadRoot {
		return os.RemoveAll(prev)
	}
	return nil
}

// Discard drops the staged tree, if any.
func (s *OutputFileStore) Discard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropLocked()
}

func (s *OutputFileStore) dropLocked() error {
	if s.staging == "" {
		return nil
	}
	dir := s.staging
	s.staging = ""
	return os.RemoveAll(dir)
}

// WriteFile writes b to rel, a slash-separated path below the staging
// directory, or below the root when nothing is staged.
func (s *OutputFileStore) WriteFile(rel string, b []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	path, err := s.resolve(rel)
	if err != nil {
		return err
	}
	return writeFile(path, b, 0o644)
}

// WriteJSON writes v as indented JSON to rel.
func (s *OutputFileStore) WriteJSON(rel string, v any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	path, err := s.resolve(rel)
	if err != nil {
		return err
	}
	return writeJSON(path, v, 0o644)
}

func (s *OutputFileStore) resolve(rel string) (string, error) {
	base := s.root
	if s.staging != "" {
		base = s.staging
	}
	clean := filepath.Clean(filepath.FromSlash(strings.TrimPrefix(rel, "/")))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("output path %q escapes %s", rel, s.root)
	}
	return filepath.Join(base, clean), nil
}

// Compile-time assertion that OutputFileStore implements domain.OutputStore.
var _ domain.OutputStore = (*OutputFileStore)(nil)
