package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright-red":     ColorBrightRed,
	"bright-green":   ColorBrightGreen,
	"bright-yellow":  ColorBrightYellow,
	"bright-blue":    ColorBrightBlue,
	"bright-magenta": ColorBrightMagenta,
	"bright-cyan":    ColorBrightCyan,
	"bright-white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
}

// ANSI returns the 256-color palette index for the color.
// ColorDefault returns -1, meaning "use the terminal's default foreground".
func (c Color) ANSI() int {
	switch c {
	case ColorRed:
		return 1
	case ColorGreen:
		return 2
	case ColorYellow:
		return 3
	case ColorBlue:
		return 4
	case ColorMagenta:
		return 5
	case ColorCyan:
		return 6
	case ColorWhite:
		return 7
	case ColorBrightRed:
		return 9
	case ColorBrightGreen:
		return 10
	case ColorBrightYellow:
		return 11
	case ColorBrightBlue:
		return 12
	case ColorBrightMagenta:
		return 13
	case ColorBrightCyan:
		return 14
	case ColorBrightWhite:
		return 15
	case ColorOrange:
		return 208
	case ColorGray:
		return 245
	default:
		return -1
	}
}

// ParseColor converts a config name like "bright-green" to a Color.
// Matching is case-insensitive and accepts underscores in place of dashes.
func ParseColor(name string) (Color, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if key == "" {
		return ColorDefault, true
	}
	c, ok := colorNames[key]
	return c, ok
}
