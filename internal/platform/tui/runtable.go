package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	tableStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// RenderRunTable formats runs as a static table, ranked by score.
// It is printed after the program exits, so the table is never focused.
func RenderRunTable(title string, runs []storage.Run) string {
	if len(runs) == 0 {
		return titleStyle.Render(title) + "\n" + helpStyle.Render("No runs recorded.") + "\n"
	}

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "Power-ups", Width: 9},
		{Title: "Ended by", Width: 9},
		{Title: "Time", Width: 8},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Ticks),
			strconv.Itoa(r.PowerUps),
			r.Cause,
			r.CreatedAt.Local().Format("15:04:05"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
		table.WithFocused(false),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// No row is selected in a printed table
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return titleStyle.Render(title) + "\n" + tableStyle.Render(t.View()) + "\n"
}
