package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snakebreak/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorPink:      lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	core.ColorOrange:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorDarkGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
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

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
