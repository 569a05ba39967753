package models

import (
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"

	"gorm.io/datatypes"
)

// DialogueLineModel is the GORM database model for dialogue lines.
// Order is stored as sort_order since ORDER is a reserved word.
type DialogueLineModel struct {
	ID          string            `gorm:"primaryKey;type:varchar(36)"`
	ProjectID   string            `gorm:"not null;index;type:varchar(36)"`
	Project     *ProjectModel     `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
	CharacterID *string           `gorm:"index;type:varchar(36)"`
	Character   *CharacterModel   `gorm:"foreignKey:CharacterID;references:ID;constraint:OnDelete:SET NULL"`
	Text        string            `gorm:"not null;type:text"`
	Expression  *string           `gorm:"type:varchar(100)"`
	Position    string            `gorm:"not null;type:varchar(50);default:'left'"`
	Order       int               `gorm:"column:sort_order;not null;index"`
	Metadata    datatypes.JSONMap `gorm:"type:json"`
	CreatedAt   time.Time         `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time         `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the table name for GORM
func (DialogueLineModel) TableName() string {
	return "dialogue_lines"
}

// ToDomain converts GORM model to domain entity
func (m *DialogueLineModel) ToDomain() *dialogue.Line {
	return &dialogue.Line{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		CharacterID: m.CharacterID,
		Text:        m.Text,
		Expression:  m.Expression,
		Position:    m.Position,
		Order:       m.Order,
		Metadata:    toMap(m.Metadata),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *DialogueLineModel) FromDomain(l *dialogue.Line) {
	m.ID = l.ID
	m.ProjectID = l.ProjectID
	m.CharacterID = l.CharacterID
	m.Text = l.Text
	m.Expression = l.Expression
	m.Position = l.Position
	m.Order = l.Order
	m.Metadata = toJSONMap(l.Metadata)
	m.CreatedAt = l.CreatedAt
	m.UpdatedAt = l.UpdatedAt
}

// All returns every model in migration order.
func All() []any {
	return []any{&ProjectModel{}, &CharacterModel{}, &DialogueLineModel{}}
}
