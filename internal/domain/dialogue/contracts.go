package dialogue

import "context"

// LineService defines the use cases of dialogue editing.
type LineService interface {
	// Add assigns an ID and timestamps to line, defaults its position and persists it.
	Add(ctx context.Context, line *Line) (*Line, error)

	// ListByProject retrieves the lines of a project sorted by order.
	ListByProject(ctx context.Context, projectID string) ([]*Line, error)

	// GetByID retrieves a line by ID.
	GetByID(ctx context.Context, lineID string) (*Line, error)

	// UpdateByID applies a partial update and returns the stored line.
	UpdateByID(ctx context.Context, lineID string, update *LineUpdate) (*Line, error)

	// DeleteByID deletes a line.
	DeleteByID(ctx context.Context, lineID string) error
}

// LineRepository defines the interface for dialogue line persistence
type LineRepository interface {
	Create(ctx context.Context, line *Line) error
	ListByProject(ctx context.Context, projectID string) ([]*Line, error)
	GetByID(ctx context.Context, lineID string) (*Line, error)
	UpdateByID(ctx context.Context, line *Line) error
	DeleteByID(ctx context.Context, lineID string) error
}
