package ui

// Layout constants.
const (
	// HeaderHeight covers the status line and the command bar.
	HeaderHeight = 2

	// LayoutCompactWidth is the threshold below which the header drops
	// secondary segments.
	LayoutCompactWidth = 100

	// MinColumnWidth keeps scaled table columns readable.
	MinColumnWidth = 4

	// CardMinWidth is the narrowest card body glamour is asked to wrap.
	CardMinWidth = 20
)
