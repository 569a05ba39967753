package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/export"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/logger"
)

// scriptExportService implements the ScriptExportService interface
type scriptExportService struct {
	projectRepo   projects.ProjectRepository
	characterRepo characters.CharacterRepository
	lineRepo      dialogue.LineRepository
	renderer      export.ScriptRenderer
	logger        logger.Logger
}

// NewScriptExportService creates a new instance of ScriptExportService
func NewScriptExportService(
	projectRepo projects.ProjectRepository,
	characterRepo characters.CharacterRepository,
	lineRepo dialogue.LineRepository,
	renderer export.ScriptRenderer,
	logger logger.Logger,
) (export.ScriptExportService, error) {
	return &scriptExportService{
		projectRepo:   projectRepo,
		characterRepo: characterRepo,
		lineRepo:      lineRepo,
		renderer:      renderer,
		logger:        logger,
	}, nil
}

func (s *scriptExportService) Export(ctx context.Context, projectID string) (*export.Script, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	chars, err := s.characterRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}

	lines, err := s.lineRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dialogue lines: %w", err)
	}

	content, err := s.renderer.Render(project, chars, lines)
	if err != nil {
		return nil, fmt.Errorf("failed to render script: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Exported project %s: %d characters, %d lines", projectID, len(chars), len(lines)))
	return &export.Script{
		ProjectID: projectID,
		Filename:  export.ScriptFilename,
		Content:   content,
	}, nil
}
