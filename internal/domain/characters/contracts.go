package characters

import "context"

// CharacterService defines the use cases of character management.
type CharacterService interface {
	// Create assigns an ID and timestamps to character and persists it.
	Create(ctx context.Context, character *Character) (*Character, error)

	// ListByProject retrieves the characters of a project in storage order.
	// A project without characters yields an empty slice.
	ListByProject(ctx context.Context, projectID string) ([]*Character, error)

	// GetByID retrieves a character by ID.
	GetByID(ctx context.Context, characterID string) (*Character, error)

	// UpdateByID applies a partial update and returns the stored character.
	UpdateByID(ctx context.Context, characterID string, update *CharacterUpdate) (*Character, error)

	// DeleteByID deletes a character; its dialogue lines become narration.
	DeleteByID(ctx context.Context, characterID string) error
}

// CharacterRepository defines the interface for Character persistence
type CharacterRepository interface {
	Create(ctx context.Context, character *Character) error
	ListByProject(ctx context.Context, projectID string) ([]*Character, error)
	GetByID(ctx context.Context, characterID string) (*Character, error)
	UpdateByID(ctx context.Context, character *Character) error
	DeleteByID(ctx context.Context, characterID string) error
}
