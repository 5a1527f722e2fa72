package kv

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/recipebox/internal/logging"
)

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s, err := NewFileStore(filepath.Join(t.TempDir(), "state.toml"))
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if _, ok, err := s.Get("favorites"); ok || err != nil {
		t.Fatalf("Get on empty store = ok %v err %v, want false nil", ok, err)
	}
}

func TestFileStore_SetCreatesFileAndDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "state.toml")

	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if err := s.Set("favorites", "[2,1]"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	got, ok, err := reopened.Get("favorites")
	if err != nil || !ok {
		t.Fatalf("Get = ok %v err %v, want true nil", ok, err)
	}
	if got != "[2,1]" {
		t.Fatalf("Get = %q, want %q", got, "[2,1]")
	}
}

func TestFileStore_ExpandsTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	s, err := NewFileStore("~/.config/recipebox/state.toml")
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	want := filepath.Join(home, ".config", "recipebox", "state.toml")
	if s.Path() != want {
		t.Fatalf("Path = %q, want %q", s.Path(), want)
	}
}

func TestFileStore_MalformedFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")
	if err := os.WriteFile(path, []byte("not valid toml {{{\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	s, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if _, ok, _ := s.Get("favorites"); ok {
		t.Fatalf("malformed file should load as empty")
	}
	if err := s.Set("theme", "Slate"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
}

func TestFileStore_WriteFailureKeepsValueInMemory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	// Parent "directory" is a regular file, so MkdirAll fails.
	s, err := NewFileStore(filepath.Join(blocker, "state.toml"))
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	if err := s.Set("favorites", "[1]"); err == nil {
		t.Fatalf("Set returned nil error, want failure")
	}
	if got, ok, _ := s.Get("favorites"); !ok || got != "[1]" {
		t.Fatalf("Get = %q ok %v, want [1] true", got, ok)
	}
}

func TestSQLiteStore_RoundTripAndOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	if _, ok, err := s.Get("favorites"); ok || err != nil {
		t.Fatalf("Get on empty db = ok %v err %v, want false nil", ok, err)
	}
	if err := s.Set("favorites", "[1]"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := s.Set("favorites", "[1,3]"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	got, ok, err := s.Get("favorites")
	if err != nil || !ok || got != "[1,3]" {
		t.Fatalf("Get = %q ok %v err %v, want [1,3] true nil", got, ok, err)
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")
	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	if err := s.Set("theme", "Slate"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if got, ok, _ := s.Get("theme"); !ok || got != "Slate" {
		t.Fatalf("Get = %q ok %v, want Slate true", got, ok)
	}
}

func TestMemoryStore_FailWrites(t *testing.T) {
	s := NewMemoryStore()
	boom := errors.New("quota exceeded")
	s.FailWrites(boom)
	if err := s.Set("k", "v"); !errors.Is(err, boom) {
		t.Fatalf("Set error = %v, want %v", err, boom)
	}
	if _, ok, _ := s.Get("k"); ok {
		t.Fatalf("failed write should not store value")
	}
	s.FailWrites(nil)
	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if s.Writes() != 2 {
		t.Fatalf("Writes = %d, want 2", s.Writes())
	}
}

func TestOpen_Backends(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		backend string
		path    string
	}{
		{"", filepath.Join(dir, "a.toml")},
		{"toml", filepath.Join(dir, "b.toml")},
		{" SQLite ", filepath.Join(dir, "c.db")},
		{"memory", ""},
	}
	for _, tc := range cases {
		s, err := Open(tc.backend, tc.path)
		if err != nil {
			t.Fatalf("Open(%q) returned error: %v", tc.backend, err)
		}
		if err := s.Set("k", "v"); err != nil {
			t.Fatalf("Open(%q).Set returned error: %v", tc.backend, err)
		}
		_ = s.Close()
	}

	if _, err := Open("redis", ""); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("Open(redis) error = %v, want ErrUnknownBackend", err)
	}
}

func TestFileStore_LogsWhyItStartedEmpty(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	t.Cleanup(func() { logging.SetOutput(nil) })
	dir := t.TempDir()

	if _, err := NewFileStore(filepath.Join(dir, "missing.toml")); err != nil {
		t.Fatalf("NewFileStore(missing) error: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("missing file logged %q, want nothing", buf.String())
	}

	// A directory opens but cannot be read as a file.
	unreadable := filepath.Join(dir, "unreadable")
	if err := os.Mkdir(unreadable, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	if _, err := NewFileStore(unreadable); err != nil {
		t.Fatalf("NewFileStore(dir) error: %v", err)
	}
	if !strings.Contains(buf.String(), "store file unreadable") {
		t.Fatalf("log = %q, want unreadable entry", buf.String())
	}

	malformed := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(malformed, []byte("values = [\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := NewFileStore(malformed); err != nil {
		t.Fatalf("NewFileStore(malformed) error: %v", err)
	}
	if !strings.Contains(buf.String(), "store file malformed") {
		t.Fatalf("log = %q, want malformed entry", buf.String())
	}
}
