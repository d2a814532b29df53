package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/arc/internal/models"
)

func newProject(n int) *models.Project {
	p := models.NewBounded("launch", nil, "")
	for i := 0; i < n; i++ {
		p.AddTask(models.NewTask(fmt.Sprintf("task%d", i), "", models.Schedule{}, ""))
	}
	return p
}

func press(t *testing.T, m BoardModel, keys ...string) BoardModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(BoardModel)
	}
	return m
}

func sized(m BoardModel) BoardModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return next.(BoardModel)
}

func TestBoard_DeleteReindexes(t *testing.T) {
	p := newProject(5)
	m := sized(NewBoardModel(p, 0))

	m = press(t, m, "down", "d")

	require.True(t, m.Changed())
	require.Equal(t, 4, p.Len())
	got, err := p.Task(1)
	require.NoError(t, err)
	assert.Equal(t, "task2", got.Name)
	assert.Equal(t, 1, m.Selected())
	assert.Equal(t, 5, p.NextTaskPID())
	assert.Contains(t, m.message, "3 task(s) re-indexed")
}

func TestBoard_DeleteLastMovesSelectionUp(t *testing.T) {
	p := newProject(2)
	m := sized(NewBoardModel(p, 0))

	m = press(t, m, "down", "d")
	assert.Equal(t, 0, m.Selected())

	m = press(t, m, "d", "d")
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, m.Selected())
}

func TestBoard_CycleStatusReplacesTask(t *testing.T) {
	p := newProject(1)
	orig, _ := p.Task(0)
	m := sized(NewBoardModel(p, 0))

	m = press(t, m, "x")

	got, err := p.Task(0)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Equal(t, models.StatusTodo, orig.Status)
	assert.NotSame(t, orig, got)
	assert.True(t, m.Changed())
}

func TestBoard_AddPrompt(t *testing.T) {
	p := newProject(1)
	m := sized(NewBoardModel(p, 0))

	m = press(t, m, "a")
	require.Equal(t, FocusAdd, m.focus)
	m.input.SetValue("ship it +2 !hold est:1h")
	m = press(t, m, "enter")

	assert.Equal(t, FocusTable, m.focus)
	require.Equal(t, 2, p.Len())
	task, err := p.Task(1)
	require.NoError(t, err)
	assert.Equal(t, "ship it", task.Name)
	assert.Equal(t, 2, task.Priority)
	assert.Equal(t, models.StatusHold, task.Status)
	require.NotNil(t, task.Est)
	assert.Equal(t, time.Hour, *task.Est)
	assert.Equal(t, 1, m.Selected())
	assert.True(t, m.Changed())
}

func TestBoard_AddPromptRejectsBadInput(t *testing.T) {
	p := newProject(0)
	m := sized(NewBoardModel(p, 0))

	m = press(t, m, "a")
	m.input.SetValue("oops due:whenever")
	m = press(t, m, "enter")

	assert.Equal(t, FocusAdd, m.focus)
	assert.True(t, m.isError)
	assert.Equal(t, 0, p.Len())
	assert.False(t, m.Changed())

	m = press(t, m, "esc")
	assert.Equal(t, FocusTable, m.focus)
}

func TestBoard_Pagination(t *testing.T) {
	p := newProject(7)
	m := sized(NewBoardModel(p, 3))

	m = press(t, m, "right")
	assert.Equal(t, 1, m.currentPage)
	assert.Equal(t, 3, m.Selected())

	m = press(t, m, "right", "right")
	assert.Equal(t, 2, m.currentPage)
	assert.Equal(t, 6, m.Selected())

	m = press(t, m, "up")
	assert.Equal(t, 5, m.Selected())
	assert.Equal(t, 1, m.currentPage)

	m = press(t, m, "left")
	assert.Equal(t, 0, m.currentPage)
	assert.Equal(t, 0, m.Selected())
}

func TestBoard_QuitAndView(t *testing.T) {
	p := newProject(2)
	m := NewBoardModel(p, 0)
	assert.Equal(t, "Loading...", m.View())

	m = sized(m)
	view := m.View()
	assert.Contains(t, view, "launch")
	assert.Contains(t, view, "task0")
	assert.Contains(t, view, "next pid 2")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Changed())
}

func TestBoard_CtrlCQuitsFromAddPrompt(t *testing.T) {
	m := sized(NewBoardModel(newProject(1), 0))
	m = press(t, m, "a")
	require.Equal(t, FocusAdd, m.focus)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = press(t, m, "q").Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
}
