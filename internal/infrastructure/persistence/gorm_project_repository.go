package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
	"github.com/MGTheTrain/renpy-visual-editor/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/logger"

	"gorm.io/gorm"
)

var projectColumns = []string{"name", "description", "config", "updated_at"}

type gormProjectRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository implementation
func NewGormProjectRepository(db *gorm.DB, logger logger.Logger) (projects.ProjectRepository, error) {
	return &gormProjectRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProjectRepository) Create(ctx context.Context, project *projects.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", translateError(err))
	}

	r.logger.Info("Created project with id ", project.ID)
	return nil
}

func (r *gormProjectRepository) List(ctx context.Context, query *projects.ProjectQuery) ([]*projects.Project, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ProjectModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ProjectModel{})

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		// SortBy and SortOrder are restricted by the query's validation tags
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}

	projectList := make([]*projects.Project, len(modelList))
	for i, model := range modelList {
		projectList[i] = model.ToDomain()
	}
	return projectList, nil
}

func (r *gormProjectRepository) GetByID(ctx context.Context, projectID string) (*projects.Project, error) {
	var model models.ProjectModel
	if err := r.db.WithContext(ctx).Where("id = ?", projectID).First(&model).Error; err != nil {
		return nil, fmt.Errorf("project with ID %s: %w", projectID, translateError(err))
	}
	return model.ToDomain(), nil
}

func (r *gormProjectRepository) UpdateByID(ctx context.Context, project *projects.Project) error {
	if err := project.Validate(); err != nil {
		return err
	}

	model := &models.ProjectModel{}
	model.FromDomain(project)

	result := r.db.WithContext(ctx).Model(model).Select(projectColumns).Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("project with ID %s: %w", project.ID, domain.ErrNotFound)
	}

	r.logger.Info("Updated project with id ", project.ID)
	return nil
}

// DeleteByID removes the project together with its characters and dialogue lines.
func (r *gormProjectRepository) DeleteByID(ctx context.Context, projectID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.DialogueLineModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete dialogue lines: %w", err)
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&models.CharacterModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete characters: %w", err)
		}

		result := tx.Where("id = ?", projectID).Delete(&models.ProjectModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete project: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("project with ID %s: %w", projectID, domain.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted project with id ", projectID)
	return nil
}
