// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// disktier.go — the file-backed cache tier used for both the system temp
// directory and the persistent per-user cache directory. Writes publish
// atomically via a sibling temp file and rename, so a concurrent reader in
// another process sees either the complete old file, the complete new file,
// or no file. The ErrMiss sentinel drives clean tier fallthrough in the
// manager's lookup path.

// Package disktier provides the on-disk cache tiers.
package disktier

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMiss is returned by Read when no cache file exists for the key.
// Callers use errors.Is(err, disktier.ErrMiss) to distinguish a miss from a
// genuine I/O error.
var ErrMiss = errors.New("disktier: miss")

// Store is a flat directory of cache files, one per key. Keys are validated
// by the manager before they reach this package.
type Store struct {
	root string
}

// New creates a Store rooted at dir. The directory is created lazily on
// first write.
func New(dir string) *Store {
	return &Store{root: dir}
}

// Root returns the tier's directory.
func (s *Store) Root() string { return s.root }

// Path returns the cache file path for key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.root, key)
}

// Read returns the full contents of the cache file for key, or ErrMiss when
// the file does not exist.
func (s *Store) Read(key string) ([]byte, error) {
	b, err := os.ReadFile(s.Path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("disktier read %s: %w", key, err)
	}
	return b, nil
}

// Write atomically publishes buf as the cache file for key: the bytes go to
// a sibling <path>.tmp first and are renamed into place. On failure the temp
// file is unlinked. No fsync; a crash immediately after rename may lose the
// entry and the next read refetches.
func (s *Store) Write(key string, buf []byte) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("disktier mkdir %s: %w", s.root, err)
	}
	path := s.Path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("disktier write %s: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("disktier publish %s: %w", key, err)
	}
	return nil
}

// Remove deletes the cache file for key. A missing file is not an error.
func (s *Store) Remove(key string) error {
	if err := os.Remove(s.Path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("disktier remove %s: %w", key, err)
	}
	return nil
}

// Purge removes every regular file in the tier whose name satisfies match
// and returns the paths actually removed. Subdirectories and files that
// fail to unlink are skipped; a missing root yields nothing.
func (s *Store) Purge(match func(name string) bool) []string {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil
	}
	var removed []string
	for _, ent := range entries {
		if ent.IsDir() || !match(ent.Name()) {
			continue
		}
		path := filepath.Join(s.root, ent.Name())
		if err := os.Remove(path); err == nil {
			removed = append(removed, path)
		}
	}
	return removed
}
