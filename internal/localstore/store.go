// Package localstore is the client's durable state: a small JSON file of
// string keys. The three keys below are the entire persistent footprint of
// the client; clearing them fully logs the application out.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	KeyAccessToken = "accessToken"
	KeyUser        = "user"
	KeyLanguageID  = "languageId"
)

// Store is a file-backed key-value store. A Store with an empty path keeps
// everything in memory, which tests use.
type Store struct {
	path string

	mu     sync.RWMutex
	values map[string]string
}

// New opens the store at path, loading existing state if present.
func New(path string) (*Store, error) {
	s := &Store{
		path:   path,
		values: make(map[string]string),
	}
	if path == "" {
		return s, nil
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewMemory returns a store that never touches disk.
func NewMemory() *Store {
	s, _ := New("")
	return s
}

// Get returns the stored value for key.
func (s *Store) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Set writes key=value and persists.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.persistLocked()
}

// Delete removes the given keys and persists.
func (s *Store) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.values, k)
	}
	return s.persistLocked()
}

// Clear removes everything and persists.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = make(map[string]string)
	return s.persistLocked()
}

func (s *Store) load() error {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read state file: %w", err)
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, &s.values); err != nil {
		return fmt.Errorf("decode state file: %w", err)
	}
	return nil
}

func (s *Store) persistLocked() error {
	if s.path == "" {
		return nil
	}
	b, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("encode state file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("mkdir state dir: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
