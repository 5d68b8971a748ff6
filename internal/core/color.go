package core

// Color represents a foreground color for a screen cell, mapped to
// ANSI colors by the platform renderer. The meteor health ramp uses
// the white/yellow/orange/red band.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
)
