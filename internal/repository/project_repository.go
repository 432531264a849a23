package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoweb/internal/database"
	"todoweb/internal/models"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project owned by the user, with optional preloading
func (r *GormProjectRepository) FindByID(userID, id uuid.UUID, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db.Scopes(database.ProjectOwnedBy(userID))

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("projects.id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// ListForUser lists the user's projects newest first. Owner and tasks are
// preloaded in bulk so rendering a list with nested tasks issues a fixed
// number of queries regardless of project count.
func (r *GormProjectRepository) ListForUser(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project

	err := r.db.Scopes(database.ProjectOwnedBy(userID)).
		Preload("Owner").
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Scopes(database.TaskOrder())
		}).
		Preload("Tasks.AssignedTo").
		Order("projects.created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	return projects, nil
}

// Update persists changes to a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project owned by the user along with its tasks. The
// scoped lookup and both deletes run in one transaction so a concurrent
// request never observes an orphaned task.
func (r *GormProjectRepository) Delete(userID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.Scopes(database.ProjectOwnedBy(userID)).
			Where("projects.id = ?", id).
			First(&project).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&project).Error
	})
}
