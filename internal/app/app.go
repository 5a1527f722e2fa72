package app

import (
	"context"
	"fmt"

	"github.com/five82/recipebox/internal/logging"
	"github.com/five82/recipebox/internal/ui"
)

// Options configure a recipebox session.
type Options struct {
	ConfigPath   string // empty uses ~/.config/recipebox/config.toml
	StoreBackend string // overrides store_backend
	StorePath    string // overrides store_path
	Ephemeral    bool   // keep favorites in memory only
	LogDir       string // overrides log_dir
	NoLog        bool
}

// Run boots the recipebox TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) (err error) {
	session, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	uiOpts := ui.Options{
		Context:          ctx,
		Catalog:          session.Catalog,
		Favorites:        session.Favorites,
		InitialFavorites: session.Favorites.Load(),
		Prefs:            session.Store,
		ThemeName:        session.Theme(),
		SearchDebounce:   session.Config.SearchDebounce,
	}
	if err := ui.Run(uiOpts); err != nil {
		logging.Error("ui exited with error", "err", err)
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
