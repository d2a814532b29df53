package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/balkashynov/arc/internal/models"
)

func TestRenderTaskTable(t *testing.T) {
	p := newProject(3)
	_ = p.DeleteTask(0)
	task, _ := p.Task(0)
	est := 90 * time.Minute
	task.Reschedule(models.Schedule{Est: &est})
	task.Priority = 3

	out := RenderTaskTable(p)
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "task1")
	assert.Contains(t, out, "task2")
	assert.NotContains(t, out, "task0")
	assert.Contains(t, out, "1h30m")
	assert.Contains(t, out, "high")
}

func TestRenderProjectTable(t *testing.T) {
	due := time.Date(2026, 12, 24, 23, 59, 59, 0, time.Local)
	projects := []*models.Project{
		models.NewBounded("launch", &due, ""),
		models.NewRecurring("gym", models.StatusHold),
	}
	projects[1].AddTask(models.NewTask("legs", "", models.Schedule{}, ""))

	out := RenderProjectTable(projects)
	assert.Contains(t, out, "launch")
	assert.Contains(t, out, "cycle")
	assert.Contains(t, out, "hold")
	assert.Contains(t, out, "24/12/2026")
	assert.Contains(t, out, "now")
}

func TestShortDue(t *testing.T) {
	base := time.Date(2026, 10, 14, 12, 0, 0, 0, time.Local)
	prev := now
	now = func() time.Time { return base }
	t.Cleanup(func() { now = prev })

	at := func(d time.Duration) *time.Time {
		v := base.Add(d)
		return &v
	}
	assert.Equal(t, "-", shortDue(nil))
	assert.Equal(t, "OVERDUE", shortDue(at(-time.Hour)))
	assert.Equal(t, "TODAY", shortDue(at(3*time.Hour)))
	assert.Equal(t, "TOMORROW", shortDue(at(30*time.Hour)))
	assert.Equal(t, "4d", shortDue(at(4*24*time.Hour+time.Hour)))
	assert.Equal(t, "03/11", shortDue(at(20*24*time.Hour)))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a long...", truncate("a long title", 9))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "", truncate("abc", 0))
}
