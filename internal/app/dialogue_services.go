package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/logger"

	"github.com/google/uuid"
)

// lineService implements the LineService interface
type lineService struct {
	lineRepo dialogue.LineRepository
	logger   logger.Logger
}

// NewLineService creates a new instance of LineService
func NewLineService(lineRepo dialogue.LineRepository, logger logger.Logger) (dialogue.LineService, error) {
	return &lineService{
		lineRepo: lineRepo,
		logger:   logger,
	}, nil
}

func (s *lineService) Add(ctx context.Context, line *dialogue.Line) (*dialogue.Line, error) {
	ts := now()
	line.ID = uuid.NewString()
	line.CreatedAt = ts
	line.UpdatedAt = ts
	if line.Position == "" {
		line.Position = dialogue.PositionLeft
	}
	if line.CharacterID != nil && *line.CharacterID == "" {
		line.CharacterID = nil
	}
	if line.Metadata == nil {
		line.Metadata = map[string]any{}
	}

	if err := s.lineRepo.Create(ctx, line); err != nil {
		return nil, fmt.Errorf("failed to add dialogue line: %w", err)
	}
	return line, nil
}

func (s *lineService) ListByProject(ctx context.Context, projectID string) ([]*dialogue.Line, error) {
	lines, err := s.lineRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dialogue lines: %w", err)
	}
	return lines, nil
}

func (s *lineService) GetByID(ctx context.Context, lineID string) (*dialogue.Line, error) {
	line, err := s.lineRepo.GetByID(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dialogue line: %w", err)
	}
	return line, nil
}

func (s *lineService) UpdateByID(ctx context.Context, lineID string, update *dialogue.LineUpdate) (*dialogue.Line, error) {
	line, err := s.lineRepo.GetByID(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("failed to get dialogue line: %w", err)
	}

	update.Apply(line)
	if line.Position == "" {
		line.Position = dialogue.PositionLeft
	}
	line.UpdatedAt = now()

	if err := s.lineRepo.UpdateByID(ctx, line); err != nil {
		return nil, fmt.Errorf("failed to update dialogue line: %w", err)
	}
	return line, nil
}

func (s *lineService) DeleteByID(ctx context.Context, lineID string) error {
	if err := s.lineRepo.DeleteByID(ctx, lineID); err != nil {
		return fmt.Errorf("failed to delete dialogue line: %w", err)
	}
	return nil
}
