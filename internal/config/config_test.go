package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.StoreBackend != defaultStoreBackend {
		t.Fatalf("StoreBackend = %q, want %q", cfg.StoreBackend, defaultStoreBackend)
	}

	wantStore, err := expandPath(defaultTOMLStorePath)
	if err != nil {
		t.Fatalf("expandPath(defaultTOMLStorePath) returned error: %v", err)
	}
	if cfg.StorePath != wantStore {
		t.Fatalf("StorePath = %q, want %q", cfg.StorePath, wantStore)
	}
	if cfg.SearchDebounce != 300*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want 300ms", cfg.SearchDebounce)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
store_backend = "  SQLite "
store_path = "  ~/.recipebox/state.db  "
log_dir = "  ~/.recipebox/logs  "
search_debounce_ms = 150
theme = " Slate "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.StoreBackend != "sqlite" {
		t.Fatalf("StoreBackend = %q, want %q", cfg.StoreBackend, "sqlite")
	}
	if cfg.StorePath != filepath.Join(home, ".recipebox", "state.db") {
		t.Fatalf("StorePath = %q, want it under HOME %q", cfg.StorePath, home)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
	if cfg.SearchDebounce != 150*time.Millisecond {
		t.Fatalf("SearchDebounce = %v, want 150ms", cfg.SearchDebounce)
	}
	if cfg.Theme != "Slate" {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, "Slate")
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
store_backend = "sqlite"
store_path = "   "
log_dir = ""
search_debounce_ms = -5
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	wantStore, err := expandPath(defaultSQLStorePath)
	if err != nil {
		t.Fatalf("expandPath(defaultSQLStorePath) returned error: %v", err)
	}
	if cfg.StorePath != wantStore {
		t.Fatalf("StorePath = %q, want %q", cfg.StorePath, wantStore)
	}
	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.SearchDebounce != defaultSearchDebounce {
		t.Fatalf("SearchDebounce = %v, want %v", cfg.SearchDebounce, defaultSearchDebounce)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`store_backend = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestDefaultStorePath_PerBackend(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got := DefaultStorePath("sqlite"); !strings.HasSuffix(got, "state.db") {
		t.Fatalf("DefaultStorePath(sqlite) = %q, want state.db", got)
	}
	if got := DefaultStorePath("toml"); !strings.HasSuffix(got, "state.toml") {
		t.Fatalf("DefaultStorePath(toml) = %q, want state.toml", got)
	}
}
