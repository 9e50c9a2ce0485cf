package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-poles/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code >= 0 {
			style = style.Foreground(lipgloss.Color(strconv.Itoa(code)))
		}
		styles[c] = style
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
