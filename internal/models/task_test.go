package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTask_DropsSchedule(t *testing.T) {
	start := time.Now()
	due := start.Add(48 * time.Hour)
	est := 2 * time.Hour

	task := NewTask("write report", "draft first", Schedule{Start: &start, Due: &due, Est: &est}, "")

	assert.Nil(t, task.Start)
	assert.Nil(t, task.Due)
	assert.Nil(t, task.Est)
	assert.Equal(t, "draft first", task.Notes)
	assert.Equal(t, StatusTodo, task.Status)
	assert.Equal(t, 0, task.Priority)
	assert.Equal(t, 0, task.PID)
	assert.Empty(t, task.ProjectID)
}

func TestReschedule(t *testing.T) {
	start := time.Now()
	est := 30 * time.Minute

	task := NewTask("stretch", "", Schedule{}, StatusActive)
	task.Reschedule(Schedule{Start: &start, Est: &est})

	assert.Equal(t, &start, task.Start)
	assert.Nil(t, task.Due)
	assert.Equal(t, &est, task.Est)
	assert.Equal(t, Schedule{Start: &start, Est: &est}, task.Schedule())
}

func TestClone(t *testing.T) {
	task := NewTask("a", "n", Schedule{}, "")
	task.PID = 4
	c := task.Clone()
	c.Status = StatusComplete

	assert.NotSame(t, task, c)
	assert.Equal(t, StatusTodo, task.Status)
	assert.Equal(t, 4, c.PID)
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"todo", StatusTodo, false},
		{" Active ", StatusActive, false},
		{"HOLD", StatusHold, false},
		{"complete", StatusComplete, false},
		{"discarded", StatusDiscarded, false},
		{"done", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownStatus)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusNext(t *testing.T) {
	s := StatusTodo
	var seen []Status
	for i := 0; i < 5; i++ {
		s = s.Next()
		seen = append(seen, s)
	}
	assert.Equal(t, []Status{StatusActive, StatusHold, StatusComplete, StatusDiscarded, StatusTodo}, seen)
	assert.Equal(t, StatusTodo, Status("weird").Next())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Cycle")
	assert.NoError(t, err)
	assert.Equal(t, KindRecurring, k)

	k, err = ParseKind("bounded")
	assert.NoError(t, err)
	assert.Equal(t, KindBounded, k)

	_, err = ParseKind("spiral")
	assert.ErrorIs(t, err, ErrUnknownKind)
}
