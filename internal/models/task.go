package models

import (
	"fmt"
	"time"
)

// Schedule groups the optional scheduling fields of a task
type Schedule struct {
	Start *time.Time
	Due   *time.Time
	Est   *time.Duration
}

// Task represents a single item of work inside a project
type Task struct {
	Name   string
	Notes  string
	Start  *time.Time
	Due    *time.Time
	Est    *time.Duration
	Status Status

	// ProjectID is a handle into the project registry, empty when the
	// task is uncategorized. It does not keep the project alive.
	ProjectID string

	Priority int
	PID      int
}

// NewTask creates a task with status todo when status is empty.
//
// NOTE: sched is accepted but not stored; Start, Due and Est stay nil.
// Existing data depends on that, so use Reschedule to set them.
func NewTask(name, notes string, sched Schedule, status Status) *Task {
	if status == "" {
		status = StatusTodo
	}
	return &Task{
		Name:   name,
		Notes:  notes,
		Status: status,
	}
}

// Reschedule sets the scheduling fields, replacing any previous values.
func (t *Task) Reschedule(sched Schedule) {
	t.Start = sched.Start
	t.Due = sched.Due
	t.Est = sched.Est
}

// Schedule returns the task's current scheduling fields.
func (t *Task) Schedule() Schedule {
	return Schedule{Start: t.Start, Due: t.Due, Est: t.Est}
}

// Clone returns a shallow copy of t; the time values are shared.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

func (t *Task) String() string {
	return fmt.Sprintf("Task(name=%s)", t.Name)
}
