package models

import (
	"encoding/json"
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"

	"gorm.io/datatypes"
)

// ProjectModel is the GORM database model for projects
type ProjectModel struct {
	ID          string            `gorm:"primaryKey;type:varchar(36)"`
	Name        string            `gorm:"not null;index;type:varchar(255)"`
	Description *string           `gorm:"type:text"`
	Config      datatypes.JSONMap `gorm:"type:json"`
	CreatedAt   time.Time         `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time         `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts GORM model to domain entity
func (m *ProjectModel) ToDomain() *projects.Project {
	return &projects.Project{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Config:      toMap(m.Config),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProjectModel) FromDomain(p *projects.Project) {
	m.ID = p.ID
	m.Name = p.Name
	m.Description = p.Description
	m.Config = toJSONMap(p.Config)
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

func toJSONMap(m map[string]any) datatypes.JSONMap {
	if m == nil {
		return datatypes.JSONMap{}
	}
	return datatypes.JSONMap(m)
}

// toMap copies a scanned JSON column into a plain map. datatypes.JSONMap
// decodes numbers as json.Number; they become int64, or float64 when not integral.
func toMap(m datatypes.JSONMap) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeJSON(v)
	}
	return out
}

func normalizeJSON(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeJSON(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeJSON(item)
		}
		return out
	default:
		return v
	}
}
