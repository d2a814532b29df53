package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/arc/internal/models"
	"github.com/balkashynov/arc/internal/parser"
)

// Focus represents what UI element has focus
type Focus int

const (
	FocusTable Focus = iota
	FocusAdd
)

// BoardModel is the interactive view of one project's tasks. It mutates
// the project in place; Changed reports whether the caller should save.
type BoardModel struct {
	width  int
	height int

	project  *models.Project
	selected int // task key

	focus Focus
	input textinput.Model

	// fixed page size from config; 0 fits the terminal
	pageSize     int
	currentPage  int
	tasksPerPage int

	changed bool
	message string
	isError bool
}

// NewBoardModel creates a board for p
func NewBoardModel(p *models.Project, pageSize int) BoardModel {
	input := textinput.New()
	input.Placeholder = "Task title +priority !status due:3d start:today est:2h"
	input.CharLimit = 200
	input.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))

	tasksPerPage := pageSize
	if tasksPerPage <= 0 {
		tasksPerPage = 10
	}

	return BoardModel{
		project:      p,
		focus:        FocusTable,
		input:        input,
		pageSize:     pageSize,
		tasksPerPage: tasksPerPage,
	}
}

// Changed reports whether any task was added, updated or deleted.
func (m BoardModel) Changed() bool {
	return m.changed
}

// Selected returns the key of the highlighted task
func (m BoardModel) Selected() int {
	return m.selected
}

func (m BoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if m.pageSize <= 0 {
			// header, pagination, help and borders take 12 rows
			m.tasksPerPage = max(m.height-12, 3)
		}
		m.currentPage = m.selected / m.tasksPerPage
		return m, nil

	case tea.KeyMsg:
		if m.focus == FocusAdd {
			return m.handleAddKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit

		case "up", "k":
			return m.moveSelectionUp(), nil

		case "down", "j":
			return m.moveSelectionDown(), nil

		case "left", "h":
			return m.prevPage(), nil

		case "right", "l":
			return m.nextPage(), nil

		case "x":
			return m.cycleStatus(), nil

		case "d":
			return m.deleteSelected(), nil

		case "a":
			m.focus = FocusAdd
			m.input.SetValue("")
			return m, m.input.Focus()
		}
	}

	return m, nil
}

// handleAddKeys handles key input while the add prompt is open
func (m BoardModel) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.focus = FocusTable
		m.input.Blur()
		return m, nil

	case tea.KeyEnter:
		m = m.addFromInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m BoardModel) addFromInput() BoardModel {
	parsed := parser.ParseTitle(m.input.Value())
	if len(parsed.Errors) > 0 {
		m.setError(strings.Join(parsed.Errors, ", "))
		return m
	}
	if parsed.Title == "" {
		m.setError("title cannot be empty")
		return m
	}

	task := models.NewTask(parsed.Title, "", models.Schedule{}, parsed.Status)
	task.Reschedule(parsed.Schedule())
	if parsed.Priority != nil {
		task.Priority = *parsed.Priority
	}
	pid := m.project.AddTask(task)

	m.changed = true
	m.focus = FocusTable
	m.input.Blur()
	m.selected = m.project.Len() - 1
	m.currentPage = m.selected / m.tasksPerPage
	m.setMessage(fmt.Sprintf("added %q with pid %d", task.Name, pid))
	slog.Debug("task added", "project", m.project.Name, "pid", pid)
	return m
}

// cycleStatus replaces the selected task with a copy in the next status
func (m BoardModel) cycleStatus() BoardModel {
	task, err := m.project.Task(m.selected)
	if err != nil {
		return m
	}
	next := task.Clone()
	next.Status = task.Status.Next()
	if err := m.project.UpdateTask(m.selected, next); err != nil {
		m.setError(err.Error())
		return m
	}
	m.changed = true
	m.setMessage(fmt.Sprintf("#%d %s → %s", m.selected, task.Status, next.Status))
	return m
}

// deleteSelected removes the selected task; later tasks move up one key.
func (m BoardModel) deleteSelected() BoardModel {
	task, err := m.project.Task(m.selected)
	if err != nil {
		return m
	}
	moved := m.project.Len() - m.selected - 1
	if err := m.project.DeleteTask(m.selected); err != nil {
		m.setError(err.Error())
		return m
	}
	m.changed = true
	m.setMessage(fmt.Sprintf("deleted %q; %d task(s) re-indexed", task.Name, moved))
	slog.Debug("task deleted", "project", m.project.Name, "key", m.selected, "moved", moved)

	if m.selected >= m.project.Len() && m.selected > 0 {
		m.selected--
	}
	m.currentPage = m.selected / m.tasksPerPage
	return m
}

func (m *BoardModel) setMessage(s string) {
	m.message = s
	m.isError = false
}

func (m *BoardModel) setError(s string) {
	m.message = s
	m.isError = true
}

// moveSelectionUp moves the selection up
func (m BoardModel) moveSelectionUp() BoardModel {
	if m.selected > 0 {
		m.selected--
		// Auto-pagination: if we scrolled above current page, go to previous page
		if m.selected < m.currentPage*m.tasksPerPage && m.currentPage > 0 {
			m.currentPage--
		}
	}
	return m
}

// moveSelectionDown moves the selection down
func (m BoardModel) moveSelectionDown() BoardModel {
	if m.selected < m.project.Len()-1 {
		m.selected++
		if m.selected >= (m.currentPage+1)*m.tasksPerPage && m.currentPage < m.pages()-1 {
			m.currentPage++
		}
	}
	return m
}

// prevPage goes to previous page
func (m BoardModel) prevPage() BoardModel {
	if m.currentPage > 0 {
		m.currentPage--
		m.selected = m.currentPage * m.tasksPerPage
	}
	return m
}

// nextPage goes to next page
func (m BoardModel) nextPage() BoardModel {
	if m.currentPage < m.pages()-1 {
		m.currentPage++
		m.selected = m.currentPage * m.tasksPerPage
	}
	return m
}

func (m BoardModel) pages() int {
	return (m.project.Len() + m.tasksPerPage - 1) / m.tasksPerPage
}

// View renders the TUI
func (m BoardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 60 / 100
	rightWidth := m.width - leftWidth - 1

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTaskTable(leftWidth),
		" ",
		m.renderTaskDetails(rightWidth),
	)

	var bottom string
	if m.focus == FocusAdd {
		bottom = m.renderAddBar()
	} else {
		bottom = m.renderHelpBar()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		content,
		m.renderMessage(),
		bottom,
	)
}

// renderTaskTable renders the left panel with the task table
func (m BoardModel) renderTaskTable(width int) string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))

	title := fmt.Sprintf("%s %s · next pid %d", kindIcon(m.project.Kind), m.project.Name, m.project.NextTaskPID())
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	if m.project.Len() == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true)
		b.WriteString(emptyStyle.Render("No tasks yet. Press a to add one"))
		return m.panel(width).Render(b.String())
	}

	availableWidth := width - 4
	keyWidth := 4
	statusWidth := 12
	dueWidth := 9
	titleWidth := max(availableWidth-keyWidth-statusWidth-dueWidth-6, 20)

	col := func(w int) lipgloss.Style { return lipgloss.NewStyle().Width(w).MarginRight(1) }

	columnHeaderStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccentBright))
	headers := lipgloss.JoinHorizontal(lipgloss.Top,
		col(keyWidth).Render("KEY"),
		col(titleWidth).Render("TITLE"),
		col(statusWidth).Render("STATUS"),
		col(dueWidth).Render("DUE"),
	)
	b.WriteString(" " + columnHeaderStyle.Render(headers))
	b.WriteString("\n")

	start := m.currentPage * m.tasksPerPage
	end := min(start+m.tasksPerPage, m.project.Len())
	tasks := m.project.Tasks()

	for i := start; i < end; i++ {
		task := tasks[i]

		row := lipgloss.JoinHorizontal(lipgloss.Top,
			col(keyWidth).Render(fmt.Sprintf("#%d", i)),
			col(titleWidth).Render(truncate(task.Name, titleWidth)),
			col(statusWidth).Foreground(statusColor(task.Status)).Render(statusIcon(task.Status)),
			col(dueWidth).Foreground(lipgloss.Color(dueColor(task.Due))).Render(shortDue(task.Due)),
		)

		if i == m.selected {
			selectedStyle := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorAccentMain)).
				Bold(true)
			b.WriteString(selectedStyle.Render(row))
		} else {
			b.WriteString(" " + row)
		}
		b.WriteString("\n")
	}

	if m.tasksPerPage < m.project.Len() {
		pageInfo := fmt.Sprintf("Page %d/%d (%d tasks)", m.currentPage+1, m.pages(), m.project.Len())
		pageStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Align(lipgloss.Center).
			Width(width - 2).
			MarginTop(1)
		b.WriteString(pageStyle.Render(pageInfo))
	}

	return m.panel(width).Render(b.String())
}

// renderTaskDetails renders the right panel with task details
func (m BoardModel) renderTaskDetails(width int) string {
	var b strings.Builder

	task, err := m.project.Task(m.selected)
	if err != nil {
		logoStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorAccentMain)).
			Bold(true).
			Align(lipgloss.Center).
			Width(width)
		b.WriteString(logoStyle.Render("arc"))
		return m.panel(width).Render(b.String())
	}

	label := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	line := func(name, v string) {
		b.WriteString(label.Render(name+": ") + value.Render(v) + "\n")
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Width(width - 2)
	b.WriteString(titleStyle.Render(task.Name))
	b.WriteString("\n\n")

	line("Key", fmt.Sprintf("#%d", m.selected))
	line("Pid", fmt.Sprintf("%d", task.PID))
	b.WriteString(label.Render("Status: "))
	b.WriteString(lipgloss.NewStyle().Foreground(statusColor(task.Status)).Bold(true).Render(string(task.Status)))
	b.WriteString("\n")

	if p := parser.PriorityLabel(task.Priority); p != "" {
		line("Priority", p)
	}
	if task.Start != nil {
		line("Start", task.Start.Format("02/01/2006"))
	}
	if task.Due != nil {
		line("Due", parser.FormatDueDate(task.Due))
	}
	if task.Est != nil {
		line("Estimate", parser.FormatEstimate(task.Est))
	}

	if task.Notes != "" {
		noteStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSecondaryText)).
			Italic(true).
			Width(width - 2)
		b.WriteString("\nNotes:\n")
		b.WriteString(noteStyle.Render(task.Notes))
	}

	return m.panel(width).Render(b.String())
}

func (m BoardModel) panel(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width)
}

func (m BoardModel) renderMessage() string {
	if m.message == "" {
		return ""
	}
	color := ColorSuccess
	if m.isError {
		color = ColorError
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(m.message)
}

// renderAddBar renders the add prompt when active
func (m BoardModel) renderAddBar() string {
	barStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(0, 1).
		Width(m.width - 2)
	return barStyle.Render("Add: " + m.input.View())
}

// renderHelpBar renders the help bar with hotkey hints
func (m BoardModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	return helpStyle.Render("↑/↓ nav · ←/→ page · a add · x status · d delete · q/esc quit")
}

func kindIcon(k models.Kind) string {
	if k == models.KindRecurring {
		return "↻"
	}
	return "→"
}
