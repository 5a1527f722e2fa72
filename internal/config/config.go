package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures recipebox settings.
type Config struct {
	StoreBackend   string
	StorePath      string
	LogDir         string
	SearchDebounce time.Duration
	Theme          string
}

const (
	defaultConfigPath     = "~/.config/recipebox/config.toml"
	defaultStoreBackend   = "toml"
	defaultTOMLStorePath  = "~/.config/recipebox/state.toml"
	defaultSQLStorePath   = "~/.config/recipebox/state.db"
	defaultLogDir         = "~/.local/share/recipebox/logs"
	defaultSearchDebounce = 300 * time.Millisecond
	defaultTheme          = "Nightfox"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		StoreBackend:   defaultStoreBackend,
		StorePath:      mustExpand(defaultTOMLStorePath),
		LogDir:         mustExpand(defaultLogDir),
		SearchDebounce: defaultSearchDebounce,
		Theme:          defaultTheme,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		StoreBackend     string `toml:"store_backend"`
		StorePath        string `toml:"store_path"`
		LogDir           string `toml:"log_dir"`
		SearchDebounceMS int    `toml:"search_debounce_ms"`
		Theme            string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()

	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(raw.StoreBackend))
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = defaultStoreBackend
	}

	cfg.StorePath = strings.TrimSpace(raw.StorePath)
	if cfg.StorePath == "" {
		cfg.StorePath = DefaultStorePath(cfg.StoreBackend)
	}
	cfg.StorePath = mustExpand(cfg.StorePath)

	cfg.LogDir = strings.TrimSpace(raw.LogDir)
	if cfg.LogDir == "" {
		cfg.LogDir = defaultLogDir
	}
	cfg.LogDir = mustExpand(cfg.LogDir)

	if raw.SearchDebounceMS > 0 {
		cfg.SearchDebounce = time.Duration(raw.SearchDebounceMS) * time.Millisecond
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}

	return cfg, nil
}

// DefaultStorePath returns the default state location for backend.
func DefaultStorePath(backend string) string {
	if strings.EqualFold(strings.TrimSpace(backend), "sqlite") {
		return mustExpand(defaultSQLStorePath)
	}
	return mustExpand(defaultTOMLStorePath)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
