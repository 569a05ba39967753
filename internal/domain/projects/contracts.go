package projects

import "context"

// ProjectService defines the use cases of project management.
type ProjectService interface {
	// Create assigns an ID and timestamps to project, fills the default config and persists it.
	Create(ctx context.Context, project *Project) (*Project, error)

	// List retrieves projects matching query.
	List(ctx context.Context, query *ProjectQuery) ([]*Project, error)

	// GetByID retrieves a project by ID.
	GetByID(ctx context.Context, projectID string) (*Project, error)

	// UpdateByID applies a partial update and returns the stored project.
	UpdateByID(ctx context.Context, projectID string, update *ProjectUpdate) (*Project, error)

	// DeleteByID deletes a project together with its characters and dialogue lines.
	DeleteByID(ctx context.Context, projectID string) error
}

// ProjectRepository defines the interface for Project persistence
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	List(ctx context.Context, query *ProjectQuery) ([]*Project, error)
	GetByID(ctx context.Context, projectID string) (*Project, error)
	UpdateByID(ctx context.Context, project *Project) error
	DeleteByID(ctx context.Context, projectID string) error
}
