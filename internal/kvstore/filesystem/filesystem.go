// Package filesystem implements kvstore.Store on top of a single text file.
// The whole mapping is loaded at Open and the whole file is rewritten,
// atomically, after every mutation.
package filesystem

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"kvdb/internal/kvstore"

	"go.uber.org/zap"
)

// Store implements kvstore.Store backed by a key=value text file.
type Store struct {
	path    string
	entries map[string]kvstore.Value
	logger  *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and write-back events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open loads the store at path. A missing file yields an empty store; the
// file is created by the first mutation. A malformed line fails the whole
// load with kvstore.ErrMalformedFile.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:    path,
		entries: make(map[string]kvstore.Value),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("store file absent, starting empty", zap.String("path", path))
			return s, nil
		}
		return nil, fmt.Errorf("opening store: %w", err)
	}
	defer f.Close()

	entries, err := kvstore.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	s.entries = entries
	s.logger.Debug("store loaded", zap.String("path", path), zap.Int("entries", len(entries)))
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key. It never touches disk.
func (s *Store) Get(key string) (kvstore.Value, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Insert sets key to value and rewrites the file. If the write fails the
// previous in-memory entry is restored.
func (s *Store) Insert(key string, value kvstore.Value) error {
	if err := kvstore.ValidateEntry(key, value); err != nil {
		return err
	}
	prev, existed := s.entries[key]
	s.entries[key] = value
	if err := s.flush(); err != nil {
		if existed {
			s.entries[key] = prev
		} else {
			delete(s.entries, key)
		}
		return err
	}
	return nil
}

// Remove deletes key if present and rewrites the file either way.
func (s *Store) Remove(key string) error {
	prev, existed := s.entries[key]
	delete(s.entries, key)
	if err := s.flush(); err != nil {
		if existed {
			s.entries[key] = prev
		}
		return err
	}
	return nil
}

// Clear drops every entry and leaves a zero-length file behind.
func (s *Store) Clear() error {
	prev := s.entries
	s.entries = make(map[string]kvstore.Value)
	if err := s.flush(); err != nil {
		s.entries = prev
		return err
	}
	return nil
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether the store has no entries.
func (s *Store) IsEmpty() bool {
	return len(s.entries) == 0
}

// Keys returns all keys in ascending order.
func (s *Store) Keys() []string {
	return kvstore.SortedKeys(s.entries)
}

// All returns a copy of the mapping.
func (s *Store) All() map[string]kvstore.Value {
	out := make(map[string]kvstore.Value, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// flush serializes the full mapping to the backing file.
func (s *Store) flush() error {
	data := kvstore.Marshal(s.entries)
	if err := atomicWrite(s.path, data); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	s.logger.Debug("store written",
		zap.String("path", s.path),
		zap.Int("entries", len(s.entries)),
		zap.Int("bytes", len(data)))
	return nil
}

// atomicWrite writes data to a file atomically via a temporary file and rename.
// A symlinked path is written through to its target, and an existing file
// keeps its permission bits. The temp file is synced before the rename.
func atomicWrite(path string, data []byte) error {
	if target, err := filepath.EvalSymlinks(path); err == nil {
		path = target
	}
	perm := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return fmt.Errorf("generating random suffix: %w", err)
	}
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp."+hex.EncodeToString(randBytes))

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best effort cleanup
		return err
	}
	return nil
}

// Compile-time check that Store implements kvstore.Store.
var _ kvstore.Store = (*Store)(nil)
