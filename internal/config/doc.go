// Package config loads recipebox settings from a TOML file.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/recipebox/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or blank, use defaults
//
// # TOML Format
//
//	store_backend = "toml"            # toml | sqlite | memory
//	store_path = "~/.config/recipebox/state.toml"
//	log_dir = "~/.local/share/recipebox/logs"
//	search_debounce_ms = 300
//	theme = "Nightfox"
//
// All fields are optional. Tilde expansion is performed for store_path and
// log_dir. When store_path is blank its default follows store_backend
// (state.toml or state.db).
//
// # Error Handling
//
// Load returns errors for path expansion failures, unreadable files (other
// than os.ErrNotExist) and TOML parse errors. A missing file is not an error.
package config
