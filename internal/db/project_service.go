package db

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/balkashynov/arc/internal/models"
)

var (
	ErrProjectNotFound = fmt.Errorf("project not found: %w", gorm.ErrRecordNotFound)
	ErrProjectExists   = errors.New("project already exists")
	ErrUncategorized   = errors.New("task has no project")
)

// SaveProject stores p and replaces all of its task rows in one transaction.
func SaveProject(p *models.Project) error {
	rec := toRecord(p)

	err := DB.Transaction(func(tx *gorm.DB) error {
		var clash int64
		if err := tx.Model(&ProjectRecord{}).
			Where("name = ? AND id <> ?", rec.Name, rec.ID).
			Count(&clash).Error; err != nil {
			return err
		}
		if clash > 0 {
			return fmt.Errorf("%w: %s", ErrProjectExists, rec.Name)
		}

		if err := tx.Omit(clause.Associations).Save(&rec).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", rec.ID).Delete(&TaskRecord{}).Error; err != nil {
			return err
		}
		if len(rec.Tasks) > 0 {
			if err := tx.Create(&rec.Tasks).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Debug("project saved", "name", p.Name, "tasks", p.Len(), "next_pid", p.NextTaskPID())
	return nil
}

// GetProjectByName loads a project and its tasks by name
func GetProjectByName(name string) (*models.Project, error) {
	return getProject("name = ?", name)
}

// GetProjectByID loads a project and its tasks by ID
func GetProjectByID(id string) (*models.Project, error) {
	return getProject("id = ?", id)
}

// ResolveProject follows a task's handle back to its project.
func ResolveProject(t *models.Task) (*models.Project, error) {
	if t.ProjectID == "" {
		return nil, ErrUncategorized
	}
	return GetProjectByID(t.ProjectID)
}

func getProject(query string, arg string) (*models.Project, error) {
	var rec ProjectRecord
	err := DB.Preload("Tasks", orderByPosition).Where(query, arg).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, arg)
	}
	if err != nil {
		return nil, err
	}

	slog.Debug("project loaded", "name", rec.Name, "tasks", len(rec.Tasks))
	return toProject(rec), nil
}

// ListProjects returns every project ordered by name
func ListProjects() ([]*models.Project, error) {
	var recs []ProjectRecord
	if err := DB.Preload("Tasks", orderByPosition).Order("name ASC").Find(&recs).Error; err != nil {
		return nil, err
	}

	projects := make([]*models.Project, 0, len(recs))
	for _, rec := range recs {
		projects = append(projects, toProject(rec))
	}
	return projects, nil
}

// DeleteProject removes a project and all of its tasks
func DeleteProject(name string) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var rec ProjectRecord
		err := tx.Where("name = ?", name).First(&rec).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrProjectNotFound, name)
		}
		if err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", rec.ID).Delete(&TaskRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&rec).Error; err != nil {
			return err
		}
		slog.Debug("project deleted", "name", name)
		return nil
	})
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
