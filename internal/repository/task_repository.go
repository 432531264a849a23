package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoweb/internal/database"
	"todoweb/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByID finds a task whose project is owned by the user
func (r *GormTaskRepository) FindByID(userID, id uuid.UUID, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db.Scopes(database.TaskOwnedBy(userID))

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.Where("tasks.id = ?", id).First(&task).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// ListForProject lists a project's tasks in canonical order
func (r *GormTaskRepository) ListForProject(userID, projectID uuid.UUID) ([]models.Task, error) {
	var tasks []models.Task

	err := r.db.Scopes(database.TaskOwnedBy(userID), database.TaskOrder()).
		Where("tasks.project_id = ?", projectID).
		Preload("Project").
		Preload("AssignedTo").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update persists changes to a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// UpdateDone persists only the is_done column (plus updated_at)
func (r *GormTaskRepository) UpdateDone(task *models.Task) error {
	return r.db.Model(task).Update("is_done", task.IsDone).Error
}

// Delete removes a task whose project is owned by the user
func (r *GormTaskRepository) Delete(userID, id uuid.UUID) error {
	var task models.Task
	if err := r.db.Scopes(database.TaskOwnedBy(userID)).
		Where("tasks.id = ?", id).
		First(&task).Error; err != nil {
		return err
	}

	return r.db.Delete(&task).Error
}
