// Package app is the composition root for recipebox.
//
// # Overview
//
// Open resolves configuration, starts file logging and opens the key-value
// store holding favorites and the theme preference. The resulting Session is
// shared by the TUI (Run) and the non-interactive commands (List and
// ToggleFavorite).
//
// # Startup
//
//  1. Load ~/.config/recipebox/config.toml (missing file uses defaults)
//  2. Apply command-line overrides (backend, store path, ephemeral mode)
//  3. Open the daily log file under log_dir
//  4. Open the toml, sqlite or memory store
//  5. Load favorites once and the persisted theme
//  6. Start the TUI and block until the user exits or the context is cancelled
//
// # Error Handling
//
// Only startup failures are returned: an unparseable config, an unknown
// backend or a store that cannot be opened. Once the TUI is running,
// storage errors are logged and shown on the status line; the session keeps
// its in-memory state.
package app
