package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table rendering palette, matching the tui package.
var (
	tableColorGold    = lipgloss.Color("#FFD700")
	tableColorSuccess = lipgloss.Color("#00E676")
	tableColorMuted   = lipgloss.Color("#8C8C8C")
	tableColorWhite   = lipgloss.Color("#EEEEEE")
	tableColorBar     = lipgloss.Color("#5B8DEF")

	styleTableHeader = lipgloss.NewStyle().Foreground(tableColorWhite).Bold(true)
	styleTableFirst  = lipgloss.NewStyle().Foreground(tableColorGold).Bold(true)
	styleTableTop    = lipgloss.NewStyle().Foreground(tableColorSuccess)
	styleTableRest   = lipgloss.NewStyle().Foreground(tableColorMuted)
	styleTableBar    = lipgloss.NewStyle().Foreground(tableColorBar)
)

// scoreBarWidth is the character width of the closeness-score bar.
const scoreBarWidth = 10

// RenderTable produces the styled terminal ranking table: rank, name,
// score with a proportional bar, then the raw criterion values. Rows are
// already in rank order in the report.
func (r *Report) RenderTable() string {
	nameWidth := len("name")
	for _, row := range r.Rows {
		if len(row.Name) > nameWidth {
			nameWidth = len(row.Name)
		}
	}

	var b strings.Builder

	if r.Title != "" {
		b.WriteString(styleTableHeader.Render(r.Title))
		b.WriteString("\n")
	}

	header := fmt.Sprintf("%4s  %-*s  %-8s %-*s  %s",
		"rank", nameWidth, "name", "score", scoreBarWidth, "", strings.Join(r.Criteria, "  "))
	b.WriteString(styleTableHeader.Render(header))
	b.WriteString("\n")

	for _, row := range r.Rows {
		style := styleTableRest
		switch {
		case row.Rank == 1:
			style = styleTableFirst
		case row.Rank <= 3:
			style = styleTableTop
		}

		values := make([]string, len(row.Values))
		for j, v := range row.Values {
			values[j] = fmt.Sprintf("%*s", len(r.Criteria[j]), trimFloat(v))
		}

		line := fmt.Sprintf("%4d  %-*s  %.4f  ", row.Rank, nameWidth, row.Name, row.Score)
		b.WriteString(style.Render(line))
		b.WriteString(styleTableBar.Render(scoreBar(row.Score)))
		b.WriteString(style.Render("  " + strings.Join(values, "  ")))
		b.WriteString("\n")
	}

	return b.String()
}

// scoreBar renders a closeness score in [0,1] as a filled/empty bar.
func scoreBar(score float64) string {
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	filled := int(score*scoreBarWidth + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled)
}

// trimFloat formats a float compactly for table cells.
func trimFloat(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}
