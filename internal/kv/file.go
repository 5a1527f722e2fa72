package kv

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/recipebox/internal/logging"
)

// FileStore keeps values in a TOML document on disk. Every Set rewrites the
// whole file.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

type fileDoc struct {
	Values map[string]string `toml:"values"`
}

// NewFileStore opens the TOML store at path. A missing file is not an error;
// an unreadable or malformed one starts empty and is replaced on first write.
func NewFileStore(path string) (*FileStore, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve store path: %w", err)
	}
	s := &FileStore{path: resolved, values: make(map[string]string)}

	file, err := os.Open(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		logging.Debug("store file unreadable, starting empty", "path", resolved, "err", err)
		return s, nil
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		logging.Debug("store file unreadable, starting empty", "path", resolved, "err", err)
		return s, nil
	}
	var doc fileDoc
	if err := toml.Unmarshal(bytes, &doc); err != nil {
		logging.Debug("store file malformed, starting empty", "path", resolved, "err", err)
		return s, nil
	}
	for k, v := range doc.Values {
		s.values[k] = v
	}
	return s, nil
}

// Path returns the resolved file path.
func (s *FileStore) Path() string { return s.path }

// Get implements Store.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set implements Store. The in-memory value is updated even when the write
// fails.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	bytes, err := toml.Marshal(fileDoc{Values: s.values})
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	if err := os.WriteFile(s.path, bytes, 0o644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *FileStore) Close() error { return nil }
