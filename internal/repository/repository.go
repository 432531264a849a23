package repository

import (
	"github.com/google/uuid"

	"todoweb/internal/models"
)

// ProjectRepository defines the interface for project data access. Every
// read and write that targets an existing record takes the acting user's ID
// and silently excludes projects that user does not own: a cross-owner
// lookup reports gorm.ErrRecordNotFound, never a permission error.
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// FindByID finds a project owned by the user, with optional preloading
	FindByID(userID, id uuid.UUID, preload ...string) (*models.Project, error)

	// ListForUser lists the user's projects newest first, with owner and
	// ordered tasks preloaded
	ListForUser(userID uuid.UUID) ([]models.Project, error)

	// Update persists changes to a project
	Update(project *models.Project) error

	// Delete removes a project owned by the user and all of its tasks
	Delete(userID, id uuid.UUID) error
}

// TaskRepository defines the interface for task data access. Ownership is
// transitive: a task is accessible iff its project's owner is the acting
// user.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByID finds a task whose project is owned by the user
	FindByID(userID, id uuid.UUID, preload ...string) (*models.Task, error)

	// ListForProject lists a project's tasks in canonical order
	ListForProject(userID, projectID uuid.UUID) ([]models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error

	// UpdateDone persists only the is_done column
	UpdateDone(task *models.Task) error

	// Delete removes a task whose project is owned by the user
	Delete(userID, id uuid.UUID) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uuid.UUID) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}
