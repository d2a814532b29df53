package db

import (
	"time"

	"github.com/balkashynov/arc/internal/models"
)

// ProjectRecord is the stored form of a models.Project
type ProjectRecord struct {
	ID          string     `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"uniqueIndex;not null" json:"name"`
	Kind        string     `gorm:"not null" json:"kind"`
	Status      string     `json:"status"`
	Created     time.Time  `json:"created"`
	Updated     time.Time  `json:"updated"`
	Due         *time.Time `json:"due"`
	NextTaskPID int        `gorm:"not null" json:"next_task_pid"`

	Tasks []TaskRecord `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE;" json:"tasks"`
}

func (ProjectRecord) TableName() string { return "projects" }

// TaskRecord is the stored form of a models.Task. Position is the task's
// current key; PID is the stamp it got when it was added.
type TaskRecord struct {
	ID         uint       `gorm:"primarykey" json:"-"`
	ProjectID  string     `gorm:"index;not null" json:"project_id"`
	Position   int        `gorm:"not null" json:"position"`
	PID        int        `gorm:"column:pid;not null" json:"pid"`
	Name       string     `gorm:"not null" json:"name"`
	Notes      string     `json:"notes"`
	Start      *time.Time `json:"start"`
	Due        *time.Time `json:"due"`
	EstNanos   *int64     `json:"est_nanos"`
	Status     string     `json:"status"`
	Priority   int        `json:"priority"`
}

func (TaskRecord) TableName() string { return "tasks" }

func toRecord(p *models.Project) ProjectRecord {
	rec := ProjectRecord{
		ID:          p.ID,
		Name:        p.Name,
		Kind:        string(p.Kind),
		Status:      string(p.Status),
		Created:     p.Created,
		Updated:     p.Updated,
		Due:         p.Due,
		NextTaskPID: p.NextTaskPID(),
	}
	p.Each(func(pos int, t *models.Task) {
		tr := TaskRecord{
			ProjectID: p.ID,
			Position:  pos,
			PID:       t.PID,
			Name:      t.Name,
			Notes:     t.Notes,
			Start:     t.Start,
			Due:       t.Due,
			Status:    string(t.Status),
			Priority:  t.Priority,
		}
		if t.Est != nil {
			ns := int64(*t.Est)
			tr.EstNanos = &ns
		}
		rec.Tasks = append(rec.Tasks, tr)
	})
	return rec
}

// toProject expects rec.Tasks ordered by position.
func toProject(rec ProjectRecord) *models.Project {
	p := &models.Project{
		ID:      rec.ID,
		Name:    rec.Name,
		Kind:    models.Kind(rec.Kind),
		Status:  models.Status(rec.Status),
		Created: rec.Created,
		Updated: rec.Updated,
		Due:     rec.Due,
	}
	tasks := make([]*models.Task, 0, len(rec.Tasks))
	for _, tr := range rec.Tasks {
		t := &models.Task{
			Name:      tr.Name,
			Notes:     tr.Notes,
			Start:     tr.Start,
			Due:       tr.Due,
			Status:    models.Status(tr.Status),
			ProjectID: tr.ProjectID,
			Priority:  tr.Priority,
			PID:       tr.PID,
		}
		if tr.EstNanos != nil {
			est := time.Duration(*tr.EstNanos)
			t.Est = &est
		}
		tasks = append(tasks, t)
	}
	p.Restore(tasks, rec.NextTaskPID)
	return p
}
