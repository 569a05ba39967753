package projects

import (
	"fmt"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
)

// ProjectQuery filters, sorts and paginates project listings
type ProjectQuery struct {
	Name      string `validate:"omitempty,max=255"`
	Limit     int    `validate:"omitempty,gt=0"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=name created_at updated_at"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewProjectQuery creates a ProjectQuery sorted by newest first.
func NewProjectQuery() *ProjectQuery {
	return &ProjectQuery{
		SortBy:    "created_at",
		SortOrder: "desc",
	}
}

// Validate for validating ProjectQuery struct
func (q *ProjectQuery) Validate() error {
	if err := domain.ValidateStruct(q); err != nil {
		return fmt.Errorf("project query: %w", err)
	}
	return nil
}
