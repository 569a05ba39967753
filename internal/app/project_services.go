package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/logger"

	"github.com/google/uuid"
)

// projectService implements the ProjectService interface
type projectService struct {
	projectRepo projects.ProjectRepository
	logger      logger.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(projectRepo projects.ProjectRepository, logger logger.Logger) (projects.ProjectService, error) {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}, nil
}

// Create stores a new project; the supplied config is overlaid on the default config.
func (s *projectService) Create(ctx context.Context, project *projects.Project) (*projects.Project, error) {
	ts := now()
	project.ID = uuid.NewString()
	project.Config = projects.WithDefaultConfig(project.Config)
	project.CreatedAt = ts
	project.UpdatedAt = ts

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

func (s *projectService) List(ctx context.Context, query *projects.ProjectQuery) ([]*projects.Project, error) {
	if query == nil {
		query = projects.NewProjectQuery()
	}
	list, err := s.projectRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return list, nil
}

func (s *projectService) GetByID(ctx context.Context, projectID string) (*projects.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// UpdateByID applies update; a supplied config replaces the stored one.
func (s *projectService) UpdateByID(ctx context.Context, projectID string, update *projects.ProjectUpdate) (*projects.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	update.Apply(project)
	project.UpdatedAt = now()

	if err := s.projectRepo.UpdateByID(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return project, nil
}

func (s *projectService) DeleteByID(ctx context.Context, projectID string) error {
	if err := s.projectRepo.DeleteByID(ctx, projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	s.logger.Info("Deleted project ", projectID, " with its characters and dialogue")
	return nil
}
