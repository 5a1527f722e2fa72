package app

import (
	"fmt"
	"strings"

	"github.com/five82/recipebox/internal/config"
	"github.com/five82/recipebox/internal/favorites"
	"github.com/five82/recipebox/internal/kv"
	"github.com/five82/recipebox/internal/logging"
	"github.com/five82/recipebox/internal/query"
	"github.com/five82/recipebox/internal/recipe"
	"github.com/five82/recipebox/internal/render"
	"github.com/five82/recipebox/internal/ui"
)

// Session holds everything a recipebox command works against: the resolved
// config, the catalog and the opened store.
type Session struct {
	Config    config.Config
	Catalog   *recipe.Catalog
	Store     kv.Store
	Favorites *favorites.Store
}

// Open loads config, starts file logging and opens the configured store.
// Callers must Close the session.
func Open(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)

	if !opts.NoLog {
		if err := logging.Init(cfg.LogDir); err != nil {
			return nil, fmt.Errorf("init logging: %w", err)
		}
	}

	store, err := kv.Open(cfg.StoreBackend, cfg.StorePath)
	if err != nil {
		logging.Close()
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	logging.Info("session opened", "backend", cfg.StoreBackend, "path", cfg.StorePath)

	return &Session{
		Config:    cfg,
		Catalog:   recipe.SampleCatalog(),
		Store:     store,
		Favorites: favorites.NewStore(store),
	}, nil
}

// applyOverrides layers command-line options over the loaded config.
func applyOverrides(cfg *config.Config, opts Options) {
	if backend := strings.ToLower(strings.TrimSpace(opts.StoreBackend)); backend != "" && backend != cfg.StoreBackend {
		cfg.StoreBackend = backend
		cfg.StorePath = config.DefaultStorePath(backend)
	}
	if path := strings.TrimSpace(opts.StorePath); path != "" {
		cfg.StorePath = path
	}
	if opts.Ephemeral {
		cfg.StoreBackend = kv.BackendMemory
	}
	if opts.LogDir != "" {
		cfg.LogDir = opts.LogDir
	}
}

// Close closes the store and the log file.
func (s *Session) Close() error {
	err := s.Store.Close()
	logging.Info("session closed")
	logging.Close()
	if err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

// Theme returns the persisted theme, falling back to the configured one.
func (s *Session) Theme() string {
	name, ok, err := s.Store.Get(ui.ThemeKey)
	if err != nil {
		logging.Warn("read theme failed", "err", err)
	}
	if err != nil || !ok || strings.TrimSpace(name) == "" {
		return s.Config.Theme
	}
	return name
}

// ListOptions selects the view printed by List.
type ListOptions struct {
	Filter string
	Sort   string
	Search string
}

// List derives the view for opts and renders it the way the TUI does.
func (s *Session) List(opts ListOptions) (string, []render.Card) {
	favs := s.Favorites.Load()
	st := query.State{
		Filter:    query.ParseFilter(opts.Filter),
		Sort:      query.ParseSort(opts.Sort),
		Search:    query.FoldQuery(opts.Search),
		Favorites: favs,
	}
	view := query.Derive(s.Catalog.All(), st)
	return render.Render(view, favs, s.Catalog.Len())
}

// ToggleFavorite flips id in the persisted favorites and reports whether it
// is now a favorite. Unknown ids return recipe.ErrNotFound.
func (s *Session) ToggleFavorite(id int) (recipe.Recipe, bool, error) {
	r, err := s.Catalog.Get(id)
	if err != nil {
		return recipe.Recipe{}, false, err
	}
	next, err := s.Favorites.Toggle(s.Favorites.Load(), id)
	return r, next.Has(id), err
}
