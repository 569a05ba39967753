package characters

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
)

// DefaultColor is the dialogue color of a character created without one.
const DefaultColor = "#FFFFFF"

// Expression is a named pose of a character backed by an image
type Expression struct {
	Name      string  `validate:"required,min=1,max=100"`
	ImagePath string  `validate:"required,min=1,max=1024,assetPath"`
	Thumbnail *string `validate:"omitempty,max=1024,assetPath"`
}

// Character is a speaker definition belonging to exactly one project
type Character struct {
	ID          string       `validate:"required,uuid4"`
	ProjectID   string       `validate:"required,max=64"`
	Name        string       `validate:"required,min=1,max=255"`
	Color       string       `validate:"required,hexcolor"`
	VoiceTag    *string      `validate:"omitempty,max=255"`
	Bio         *string      `validate:"omitempty,max=8192"`
	Expressions []Expression `validate:"dive"`
	CreatedAt   time.Time    `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating Character struct
func (c *Character) Validate() error {
	if err := domain.ValidateStruct(c); err != nil {
		return fmt.Errorf("character: %w", err)
	}
	return nil
}

// FindExpression returns the expression called name, if the character has one.
func (c *Character) FindExpression(name string) (Expression, bool) {
	for _, e := range c.Expressions {
		if e.Name == name {
			return e, true
		}
	}
	return Expression{}, false
}

// CharacterUpdate carries the fields of a partial character update; nil fields are left unchanged.
type CharacterUpdate struct {
	Name        *string
	Color       *string
	VoiceTag    *string
	Bio         *string
	Expressions *[]Expression
}

// Apply copies the set fields of u onto c.
func (u *CharacterUpdate) Apply(c *Character) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Color != nil {
		c.Color = *u.Color
	}
	if u.VoiceTag != nil {
		c.VoiceTag = u.VoiceTag
	}
	if u.Bio != nil {
		c.Bio = u.Bio
	}
	if u.Expressions != nil {
		c.Expressions = *u.Expressions
	}
}
