package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"todoweb/internal/models"
	"todoweb/internal/repository"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNameRequired    = errors.New("name is required")
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// ProjectInput represents input for creating or updating a project
type ProjectInput struct {
	Name        string
	Description string
}

// List returns the user's projects newest first, with owner and ordered
// tasks preloaded.
func (s *ProjectService) List(userID uuid.UUID) ([]models.Project, error) {
	projects, err := s.projectRepo.ListForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Get returns a single project owned by the user
func (s *ProjectService) Get(userID, projectID uuid.UUID, preload ...string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(userID, projectID, preload...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// Create creates a project owned by the user
func (s *ProjectService) Create(userID uuid.UUID, input ProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	project := &models.Project{
		OwnerID:     userID,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// Update mutates name and description of a project owned by the user
func (s *ProjectService) Update(userID, projectID uuid.UUID, input ProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(userID, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrNameRequired
	}

	project.Name = input.Name
	project.Description = input.Description

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// Delete removes a project owned by the user and, by cascade, its tasks
func (s *ProjectService) Delete(userID, projectID uuid.UUID) error {
	if err := s.projectRepo.Delete(userID, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}
