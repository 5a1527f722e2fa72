// Package ui provides the terminal interface for recipebox.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns the query state (filter, sort,
// search and favorites) and is its only writer. Every change to that state
// runs the query pipeline over the catalog and re-renders all cards, so the
// screen is always a function of the current state.
//
// # Package Structure
//
//   - app.go: Model, Options, event dispatch and the state transitions
//   - cards.go: card list rendering, selection tracking and scrolling
//   - search.go: search input handling
//   - debounce.go: sequence-numbered debouncer for search input
//   - header.go: status bar, command bar and footer
//   - help.go: help overlay built from the key map
//   - keys.go: key bindings
//   - theme.go: color palettes and lipgloss styles
//
// # Keyboard Shortcuts
//
// Browse:
//   - f: Cycle filter (all, favorites, easy, medium, hard, quick)
//   - 1-6: Select a filter directly
//   - s: Cycle sort (none, name, time)
//   - /: Search by name or ingredient; esc clears, enter applies now
//
// Recipe:
//   - Space: Toggle favorite (persisted)
//   - i: Toggle ingredients
//   - t: Toggle steps
//
// Navigation:
//   - j/k: Move down/up
//   - g/G: Jump to top/bottom
//
// General:
//   - T: Cycle theme (persisted)
//   - h/?: Toggle help
//   - e/ctrl+c: Quit
//
// # Card Visibility
//
// Ingredient and step lists start hidden on every card. Any re-derive
// (filter, sort, search or favorite change) rebuilds the cards, which hides
// them again.
package ui
