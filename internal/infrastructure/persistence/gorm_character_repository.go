package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var characterColumns = []string{"name", "color", "voice_tag", "bio", "expressions", "updated_at"}

type gormCharacterRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCharacterRepository creates a new GORM-based CharacterRepository implementation
func NewGormCharacterRepository(db *gorm.DB, logger logger.Logger) (characters.CharacterRepository, error) {
	return &gormCharacterRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCharacterRepository) Create(ctx context.Context, character *characters.Character) error {
	if err := character.Validate(); err != nil {
		return err
	}

	model := &models.CharacterModel{}
	model.FromDomain(character)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create character: %w", translateError(err))
	}

	r.logger.Info("Created character with id ", character.ID)
	return nil
}

func (r *gormCharacterRepository) ListByProject(ctx context.Context, projectID string) ([]*characters.Character, error) {
	var modelList []*models.CharacterModel
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch characters: %w", err)
	}

	characterList := make([]*characters.Character, len(modelList))
	for i, model := range modelList {
		characterList[i] = model.ToDomain()
	}
	return characterList, nil
}

func (r *gormCharacterRepository) GetByID(ctx context.Context, characterID string) (*characters.Character, error) {
	var model models.CharacterModel
	if err := r.db.WithContext(ctx).Where("id = ?", characterID).First(&model).Error; err != nil {
		return nil, fmt.Errorf("character with ID %s: %w", characterID, translateError(err))
	}
	return model.ToDomain(), nil
}

func (r *gormCharacterRepository) UpdateByID(ctx context.Context, character *characters.Character) error {
	if err := character.Validate(); err != nil {
		return err
	}

	model := &models.CharacterModel{}
	model.FromDomain(character)

	result := r.db.WithContext(ctx).Model(model).Omit(clause.Associations).Select(characterColumns).Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update character: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("character with ID %s: %w", character.ID, domain.ErrNotFound)
	}

	r.logger.Info("Updated character with id ", character.ID)
	return nil
}

// DeleteByID removes the character; its dialogue lines are kept as narration.
func (r *gormCharacterRepository) DeleteByID(ctx context.Context, characterID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.DialogueLineModel{}).
			Where("character_id = ?", characterID).
			Update("character_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach dialogue lines: %w", err)
		}

		result := tx.Where("id = ?", characterID).Delete(&models.CharacterModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete character: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("character with ID %s: %w", characterID, domain.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted character with id ", characterID)
	return nil
}
