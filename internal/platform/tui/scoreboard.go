package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snakebreak/internal/scores"
)

// Scoreboard layout constants
const (
	rankWidth  = 6
	nameWidth  = 12
	scoreWidth = 10
)

// newScoreTable builds a table of ranked entries.
func newScoreTable(entries []scores.Entry, height int) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Name", Width: nameWidth},
		{Title: "Score", Width: scoreWidth},
	}

	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(max(min(height, len(rows)+3), 4)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// renderHighScores renders the high-score screen.
func renderHighScores(entries []scores.Entry, width, height int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("HIGH SCORES", width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		content = emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	} else {
		content = newScoreTable(entries, height-8).View()
	}

	box := boxStyle.Render(content)
	for _, line := range strings.Split(box, "\n") {
		b.WriteString(centerText(line, width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("esc/enter: back", width))
	return b.String()
}
