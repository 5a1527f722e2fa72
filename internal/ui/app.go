package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/recipebox/internal/favorites"
	"github.com/five82/recipebox/internal/kv"
	"github.com/five82/recipebox/internal/logging"
	"github.com/five82/recipebox/internal/query"
	"github.com/five82/recipebox/internal/recipe"
	"github.com/five82/recipebox/internal/render"
)

// ThemeKey is the storage key holding the selected theme name.
const ThemeKey = "theme"

// Options configures the UI.
type Options struct {
	Context   context.Context
	Catalog   *recipe.Catalog
	Favorites *favorites.Store
	// InitialFavorites is the set loaded at startup. It is not re-read.
	InitialFavorites favorites.Set
	Prefs            kv.Store
	ThemeName        string
	SearchDebounce   time.Duration
}

// Model is the root application state for Bubble Tea. It is the only writer
// of the query state; every change re-derives the visible cards.
type Model struct {
	// Configuration
	ctx      context.Context
	catalog  *recipe.Catalog
	favStore *favorites.Store
	prefs    kv.Store
	keys     keyMap

	// Query state
	state      query.State
	summary    string
	cards      []render.Card
	recomputes int

	// Search
	searchInput textinput.Model
	searching   bool
	debounce    Debouncer

	// UI state
	theme       Theme
	width       int
	height      int
	ready       bool
	selectedRow int
	selectedID  int
	viewport    viewport.Model
	showHelp    bool
	status      string
	statusIsErr bool
}

// New creates a new Bubble Tea model and renders the initial view.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = recipe.SampleCatalog()
	}

	delay := opts.SearchDebounce
	if delay <= 0 {
		delay = DefaultSearchDebounce
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "name or ingredient"
	input.CharLimit = SearchCharLimit

	m := Model{
		ctx:         ctx,
		catalog:     catalog,
		favStore:    opts.Favorites,
		prefs:       opts.Prefs,
		keys:        DefaultKeyMap(),
		state:       query.State{Filter: query.FilterAll, Sort: query.SortNone, Favorites: opts.InitialFavorites},
		searchInput: input,
		debounce:    NewDebouncer(delay),
		theme:       GetTheme(themeName),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.width, m.contentHeight())
		}
		m.ready = true
		m.viewport.Width = m.width
		m.viewport.Height = m.contentHeight()
		m.searchInput.Width = maxInt(m.width-4, 10)
		m.updateViewport()
		return m, nil

	case debounceMsg:
		if value, ok := m.debounce.Accept(msg); ok {
			m.applySearch(value)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderCards())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.debounce.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.CycleFilter):
		m.setFilter(query.NextFilter(m.state.Filter))

	case key.Matches(msg, m.keys.SelectFilter):
		if f, ok := filterForDigit(msg.String()); ok {
			m.setFilter(f)
		}

	case key.Matches(msg, m.keys.CycleSort):
		m.setSort(query.NextSort(m.state.Sort))

	case key.Matches(msg, m.keys.ToggleFavorite):
		if card := m.selectedCard(); card != nil {
			m.toggleFavorite(card.ID)
		}

	case key.Matches(msg, m.keys.ToggleIngredients):
		if card := m.selectedCard(); card != nil {
			m.toggleIngredients(card.ID)
		}

	case key.Matches(msg, m.keys.ToggleSteps):
		if card := m.selectedCard(); card != nil {
			m.toggleSteps(card.ID)
		}

	case key.Matches(msg, m.keys.Search):
		cmd := m.startSearch()
		return m, cmd

	case key.Matches(msg, m.keys.Escape):
		// Clears an applied search outside the input
		if m.state.Search != "" {
			m.searchInput.SetValue("")
			m.applySearch("")
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(m.cards)-1 {
			m.selectedRow++
			m.updateViewport()
		}

	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
			m.updateViewport()
		}

	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		m.updateViewport()

	case key.Matches(msg, m.keys.Bottom):
		if len(m.cards) > 0 {
			m.selectedRow = len(m.cards) - 1
			m.updateViewport()
		}
	}

	return m, nil
}

// filterForDigit maps the number keys 1-6 onto the filter cycle order.
func filterForDigit(s string) (query.Filter, bool) {
	if len(s) != 1 || s[0] < '1' {
		return "", false
	}
	filters := query.Filters()
	idx := int(s[0] - '1')
	if idx >= len(filters) {
		return "", false
	}
	return filters[idx], true
}

// setFilter records the filter and re-derives.
func (m *Model) setFilter(f query.Filter) {
	m.state.Filter = f
	m.refresh()
}

// setSort records the sort order and re-derives.
func (m *Model) setSort(s query.Sort) {
	m.state.Sort = s
	m.refresh()
}

// applySearch records the case-folded query and re-derives. Whitespace is
// part of the query.
func (m *Model) applySearch(raw string) {
	m.state.Search = query.FoldQuery(raw)
	m.refresh()
}

// toggleFavorite flips id in the favorites set, persists it and re-derives.
// A persistence failure keeps the in-memory set and reports on the status line.
func (m *Model) toggleFavorite(id int) {
	if !m.catalog.Has(id) {
		return
	}
	if m.favStore == nil {
		m.state.Favorites = m.state.Favorites.Toggle(id)
		m.refresh()
		return
	}

	next, err := m.favStore.Toggle(m.state.Favorites, id)
	m.state.Favorites = next
	if err != nil {
		m.setStatus("Favorites not saved: "+err.Error(), true)
	} else if next.Has(id) {
		m.setStatus("Added to favorites", false)
	} else {
		m.setStatus("Removed from favorites", false)
	}
	m.refresh()
}

// toggleIngredients flips the ingredient list of the card with id. No
// re-derive happens and unknown ids are ignored.
func (m *Model) toggleIngredients(id int) {
	if i := m.cardIndex(id); i >= 0 {
		m.cards[i].IngredientsVisible = !m.cards[i].IngredientsVisible
		m.updateViewport()
	}
}

// toggleSteps flips the step list of the card with id.
func (m *Model) toggleSteps(id int) {
	if i := m.cardIndex(id); i >= 0 {
		m.cards[i].StepsVisible = !m.cards[i].StepsVisible
		m.updateViewport()
	}
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefs == nil {
		return
	}
	if err := m.prefs.Set(ThemeKey, m.theme.Name); err != nil {
		logging.Warn("persist theme failed", "theme", m.theme.Name, "err", err)
		m.setStatus("Theme not saved: "+err.Error(), true)
	}
}

// refresh re-derives the view from the catalog and the current state, then
// re-renders every card. Selection follows the previously selected recipe.
func (m *Model) refresh() {
	view := query.Derive(m.catalog.All(), m.state)
	m.summary, m.cards = render.Render(view, m.state.Favorites, m.catalog.Len())
	m.recomputes++
	m.updateSelection()
	m.updateViewport()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
