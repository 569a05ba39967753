package app

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/logger"

	"github.com/google/uuid"
)

// characterService implements the CharacterService interface
type characterService struct {
	characterRepo characters.CharacterRepository
	logger        logger.Logger
}

// NewCharacterService creates a new instance of CharacterService
func NewCharacterService(characterRepo characters.CharacterRepository, logger logger.Logger) (characters.CharacterService, error) {
	return &characterService{
		characterRepo: characterRepo,
		logger:        logger,
	}, nil
}

func (s *characterService) Create(ctx context.Context, character *characters.Character) (*characters.Character, error) {
	ts := now()
	character.ID = uuid.NewString()
	character.CreatedAt = ts
	character.UpdatedAt = ts
	if character.Color == "" {
		character.Color = characters.DefaultColor
	}
	if character.Expressions == nil {
		character.Expressions = []characters.Expression{}
	}

	if err := s.characterRepo.Create(ctx, character); err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}
	return character, nil
}

func (s *characterService) ListByProject(ctx context.Context, projectID string) ([]*characters.Character, error) {
	list, err := s.characterRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return list, nil
}

func (s *characterService) GetByID(ctx context.Context, characterID string) (*characters.Character, error) {
	character, err := s.characterRepo.GetByID(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return character, nil
}

func (s *characterService) UpdateByID(ctx context.Context, characterID string, update *characters.CharacterUpdate) (*characters.Character, error) {
	character, err := s.characterRepo.GetByID(ctx, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	update.Apply(character)
	character.UpdatedAt = now()

	if err := s.characterRepo.UpdateByID(ctx, character); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	return character, nil
}

func (s *characterService) DeleteByID(ctx context.Context, characterID string) error {
	if err := s.characterRepo.DeleteByID(ctx, characterID); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}
