package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoweb/internal/constants"
	"todoweb/internal/models"
	"todoweb/internal/repository"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrDeadlineInPast  = errors.New("deadline cannot be in the past")
	ErrInvalidPriority = errors.New("invalid priority")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// TaskInput represents input for creating or updating a task
type TaskInput struct {
	Title       string
	Description string
	Deadline    *time.Time
	Priority    models.Priority
}

// Create creates a task under the given project. The project has already
// been resolved through the owner-scoped repository by the caller.
func (s *TaskService) Create(project *models.Project, input TaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if err := validateDeadline(input.Deadline, nil); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == 0 {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	task := &models.Task{
		ProjectID:   project.ID,
		Title:       input.Title,
		Description: input.Description,
		Deadline:    input.Deadline,
		Priority:    priority,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Get returns a task whose project is owned by the user
func (s *TaskService) Get(userID, taskID uuid.UUID, preload ...string) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(userID, taskID, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// ListForProject returns a project's tasks in canonical order
func (s *TaskService) ListForProject(userID, projectID uuid.UUID) ([]models.Task, error) {
	tasks, err := s.taskRepo.ListForProject(userID, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Update replaces the editable fields of a task whose project is owned by
// the user, re-validating title and deadline.
func (s *TaskService) Update(userID, taskID uuid.UUID, input TaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(userID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if err := validateDeadline(input.Deadline, task.Deadline); err != nil {
		return nil, err
	}

	priority := input.Priority
	if priority == 0 {
		priority = models.PriorityMedium
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Deadline = input.Deadline
	task.Priority = priority

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes a task whose project is owned by the user
func (s *TaskService) Delete(userID, taskID uuid.UUID) error {
	if err := s.taskRepo.Delete(userID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ToggleDone flips is_done on a task whose project is owned by the user and
// persists only that field.
func (s *TaskService) ToggleDone(userID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(userID, taskID, "Project", "AssignedTo")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	task.IsDone = !task.IsDone

	if err := s.taskRepo.UpdateDone(task); err != nil {
		return nil, fmt.Errorf("failed to toggle status: %w", err)
	}

	return task, nil
}

// validateDeadline rejects deadlines strictly in the past. On update the
// check is waived when the submitted deadline is within DeadlineTolerance of
// the stored one, so other fields of an already-overdue task stay editable
// without bumping its deadline.
func validateDeadline(deadline, existing *time.Time) error {
	if deadline == nil {
		return nil
	}

	if existing != nil {
		diff := deadline.Sub(*existing)
		if diff < 0 {
			diff = -diff
		}
		if diff < constants.DeadlineTolerance {
			return nil
		}
	}

	if deadline.Before(time.Now()) {
		return ErrDeadlineInPast
	}

	return nil
}
