package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the header drops labels.
	LayoutCompactWidth = 80
)

// Chrome heights around the card list.
const (
	// HeaderLines covers the status bar and the command bar.
	HeaderLines = 2

	// FooterLines covers the search or status line.
	FooterLines = 1

	// HelpModalWidth is the width of the help overlay.
	HelpModalWidth = 44
)

// Search input limits.
const (
	// DefaultSearchDebounce is the quiet period before typed input is applied.
	DefaultSearchDebounce = 300 * time.Millisecond

	// SearchCharLimit caps the search input length.
	SearchCharLimit = 64
)
