package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/balkashynov/arc/internal/models"
	"github.com/balkashynov/arc/internal/parser"
)

var (
	headerCell = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Padding(0, 1)
	cell       = lipgloss.NewStyle().Padding(0, 1)
)

// RenderTaskTable renders a project's tasks as a static table, for
// output that is not interactive.
func RenderTaskTable(p *models.Project) string {
	tasks := p.Tasks()
	rows := make([][]string, 0, len(tasks))
	for key, t := range tasks {
		rows = append(rows, []string{
			fmt.Sprintf("#%d", key),
			fmt.Sprintf("%d", t.PID),
			truncate(t.Name, 40),
			string(t.Status),
			parser.PriorityLabel(t.Priority),
			formatDate(t.Start),
			formatDate(t.Due),
			parser.FormatEstimate(t.Est),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))).
		Headers("KEY", "PID", "TITLE", "STATUS", "PRIORITY", "START", "DUE", "EST").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			if col == 3 {
				return cell.Foreground(statusColor(tasks[row].Status))
			}
			return cell
		})

	return tbl.String()
}

// RenderProjectTable renders a summary row per project
func RenderProjectTable(projects []*models.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.Name,
			string(p.Kind),
			string(p.Status),
			fmt.Sprintf("%d", p.Len()),
			fmt.Sprintf("%d", p.NextTaskPID()),
			formatDate(p.Due),
			humanize.Time(p.Created),
		})
	}

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBorder))).
		Headers("NAME", "KIND", "STATUS", "TASKS", "NEXT PID", "DUE", "CREATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCell
			}
			if col == 2 {
				return cell.Foreground(statusColor(projects[row].Status))
			}
			return cell
		})

	return tbl.String()
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("02/01/2006")
}
