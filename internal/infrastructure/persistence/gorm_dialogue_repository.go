package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var lineColumns = []string{"character_id", "text", "expression", "position", "sort_order", "metadata", "updated_at"}

type gormLineRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLineRepository creates a new GORM-based LineRepository implementation
func NewGormLineRepository(db *gorm.DB, logger logger.Logger) (dialogue.LineRepository, error) {
	return &gormLineRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormLineRepository) Create(ctx context.Context, line *dialogue.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	model := &models.DialogueLineModel{}
	model.FromDomain(line)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create dialogue line: %w", translateError(err))
	}

	r.logger.Info("Created dialogue line with id ", line.ID)
	return nil
}

// ListByProject returns the lines of a project by ascending order; lines with
// equal order keep their creation sequence.
func (r *gormLineRepository) ListByProject(ctx context.Context, projectID string) ([]*dialogue.Line, error) {
	var modelList []*models.DialogueLineModel
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("sort_order asc").
		Order("created_at asc").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch dialogue lines: %w", err)
	}

	lines := make([]*dialogue.Line, len(modelList))
	for i, model := range modelList {
		lines[i] = model.ToDomain()
	}
	return lines, nil
}

func (r *gormLineRepository) GetByID(ctx context.Context, lineID string) (*dialogue.Line, error) {
	var model models.DialogueLineModel
	if err := r.db.WithContext(ctx).Where("id = ?", lineID).First(&model).Error; err != nil {
		return nil, fmt.Errorf("dialogue line with ID %s: %w", lineID, translateError(err))
	}
	return model.ToDomain(), nil
}

func (r *gormLineRepository) UpdateByID(ctx context.Context, line *dialogue.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	model := &models.DialogueLineModel{}
	model.FromDomain(line)

	result := r.db.WithContext(ctx).Model(model).Omit(clause.Associations).Select(lineColumns).Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update dialogue line: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("dialogue line with ID %s: %w", line.ID, domain.ErrNotFound)
	}

	r.logger.Info("Updated dialogue line with id ", line.ID)
	return nil
}

func (r *gormLineRepository) DeleteByID(ctx context.Context, lineID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", lineID).Delete(&models.DialogueLineModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete dialogue line: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("dialogue line with ID %s: %w", lineID, domain.ErrNotFound)
	}

	r.logger.Info("Deleted dialogue line with id ", lineID)
	return nil
}
