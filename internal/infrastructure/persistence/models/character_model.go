package models

import (
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
)

// ExpressionModel is the stored form of a character expression
type ExpressionModel struct {
	Name      string  `json:"name"`
	ImagePath string  `json:"image_path"`
	Thumbnail *string `json:"thumbnail,omitempty"`
}

// CharacterModel is the GORM database model for characters
type CharacterModel struct {
	ID          string            `gorm:"primaryKey;type:varchar(36)"`
	ProjectID   string            `gorm:"not null;index;type:varchar(36)"`
	Project     *ProjectModel     `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	Name        string            `gorm:"not null;type:varchar(255)"`
	Color       string            `gorm:"not null;type:varchar(16);default:'#FFFFFF'"`
	VoiceTag    *string           `gorm:"type:varchar(255)"`
	Bio         *string           `gorm:"type:text"`
	Expressions []ExpressionModel `gorm:"serializer:json;type:json"`
	CreatedAt   time.Time         `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time         `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the table name for GORM
func (CharacterModel) TableName() string {
	return "characters"
}

// ToDomain converts GORM model to domain entity
func (m *CharacterModel) ToDomain() *characters.Character {
	expressions := make([]characters.Expression, len(m.Expressions))
	for i, e := range m.Expressions {
		expressions[i] = characters.Expression{
			Name:      e.Name,
			ImagePath: e.ImagePath,
			Thumbnail: e.Thumbnail,
		}
	}

	return &characters.Character{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Color:       m.Color,
		VoiceTag:    m.VoiceTag,
		Bio:         m.Bio,
		Expressions: expressions,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CharacterModel) FromDomain(c *characters.Character) {
	m.ID = c.ID
	m.ProjectID = c.ProjectID
	m.Name = c.Name
	m.Color = c.Color
	m.VoiceTag = c.VoiceTag
	m.Bio = c.Bio
	m.Expressions = make([]ExpressionModel, len(c.Expressions))
	for i, e := range c.Expressions {
		m.Expressions[i] = ExpressionModel{
			Name:      e.Name,
			ImagePath: e.ImagePath,
			Thumbnail: e.Thumbnail,
		}
	}
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
