package core

import "strings"

// Color represents a foreground color for a screen cell or a game entity.
// Uses ANSI color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorPink
	ColorOrange
	ColorDarkGreen
)

// String returns the configuration name of the color.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorGray:
		return "gray"
	case ColorPink:
		return "pink"
	case ColorOrange:
		return "orange"
	case ColorDarkGreen:
		return "dark-green"
	default:
		return "default"
	}
}

// ParseColor converts a configuration name to a Color.
// Returns ColorDefault and false if the name is not recognized.
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return ColorRed, true
	case "green":
		return ColorGreen, true
	case "yellow":
		return ColorYellow, true
	case "blue":
		return ColorBlue, true
	case "magenta":
		return ColorMagenta, true
	case "cyan":
		return ColorCyan, true
	case "white":
		return ColorWhite, true
	case "gray", "grey":
		return ColorGray, true
	case "pink":
		return ColorPink, true
	case "orange":
		return ColorOrange, true
	case "dark-green", "darkgreen":
		return ColorDarkGreen, true
	case "default", "":
		return ColorDefault, true
	default:
		return ColorDefault, false
	}
}
