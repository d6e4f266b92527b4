package core

// Color represents a foreground color for a screen cell.
// The platform maps it to terminal colors, or ignores it when the terminal
// has no color support.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightGreen
	ColorBrightRed
	ColorGray
)
