package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Project owns an ordered collection of tasks. The key of a task is its
// index, so keys always form the dense range [0, Len()).
type Project struct {
	ID      string
	Name    string
	Status  Status
	Kind    Kind
	Created time.Time
	Updated time.Time

	// Due is only meaningful for bounded projects.
	Due *time.Time

	tasks       []*Task
	nextTaskPID int
}

func newProject(name string, kind Kind, status Status) *Project {
	if status == "" {
		status = StatusActive
	}
	now := time.Now()
	return &Project{
		ID:      uuid.NewString(),
		Name:    name,
		Status:  status,
		Kind:    kind,
		Created: now,
		Updated: now,
	}
}

// NewBounded creates an arc: a project that ends once its tasks are done.
func NewBounded(name string, due *time.Time, status Status) *Project {
	p := newProject(name, KindBounded, status)
	p.Due = due
	return p
}

// NewRecurring creates a cycle: a project of repeating tasks that never ends.
func NewRecurring(name string, status Status) *Project {
	return newProject(name, KindRecurring, status)
}

// SetDue sets the deadline of a bounded project.
func (p *Project) SetDue(due *time.Time) error {
	if p.Kind == KindRecurring {
		return ErrNoDeadline
	}
	p.Due = due
	return nil
}

// NextTaskPID returns the pid the next added task will be stamped with.
func (p *Project) NextTaskPID() int {
	return p.nextTaskPID
}

// Len returns the number of tasks
func (p *Project) Len() int {
	return len(p.tasks)
}

// Task returns the task at key pid.
func (p *Project) Task(pid int) (*Task, error) {
	if !p.has(pid) {
		return nil, &NotFoundError{PID: pid}
	}
	return p.tasks[pid], nil
}

// Tasks returns the tasks in key order. The slice is a copy.
func (p *Project) Tasks() []*Task {
	out := make([]*Task, len(p.tasks))
	copy(out, p.tasks)
	return out
}

// Each calls fn for every task in key order.
func (p *Project) Each(fn func(pid int, t *Task)) {
	for i, t := range p.tasks {
		fn(i, t)
	}
}

// AssignPID stamps t with the counter value and advances the counter.
func (p *Project) AssignPID(t *Task) int {
	pid := p.nextTaskPID
	t.PID = pid
	p.nextTaskPID++
	return pid
}

// AddTask stamps t and appends it. Any task is accepted, including one
// that already belongs to another project; its handle is overwritten.
func (p *Project) AddTask(t *Task) int {
	pid := p.AssignPID(t)
	t.ProjectID = p.ID
	p.tasks = append(p.tasks, t)
	return pid
}

// UpdateTask replaces the task at key pid. The replacement is stored
// as-is: its PID and ProjectID are not re-stamped. A nil replacement is
// rejected with ErrNilTask.
func (p *Project) UpdateTask(pid int, t *Task) error {
	if !p.has(pid) {
		return &NotFoundError{PID: pid}
	}
	if t == nil {
		return ErrNilTask
	}
	p.tasks[pid] = t
	return nil
}

// DeleteTask removes the task at key pid. Every later task moves down one
// key; their PID stamps are left as they were.
func (p *Project) DeleteTask(pid int) error {
	if !p.has(pid) {
		return &NotFoundError{PID: pid}
	}
	tasks := make([]*Task, 0, len(p.tasks)-1)
	tasks = append(tasks, p.tasks[:pid]...)
	tasks = append(tasks, p.tasks[pid+1:]...)
	p.tasks = tasks
	return nil
}

// Restore replaces the task sequence and counter, as loaded from storage.
func (p *Project) Restore(tasks []*Task, nextTaskPID int) {
	p.tasks = tasks
	p.nextTaskPID = nextTaskPID
}

func (p *Project) has(pid int) bool {
	return pid >= 0 && pid < len(p.tasks)
}

func (p *Project) String() string {
	return fmt.Sprintf("Project(name=%s)", p.Name)
}
