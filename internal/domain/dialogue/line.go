package dialogue

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
)

// Screen positions understood by the script exporter. Stored positions are
// not restricted to these values.
const (
	PositionLeft   = "left"
	PositionRight  = "right"
	PositionCenter = "center"
)

// Line is one line of script text, optionally spoken by a character
type Line struct {
	ID          string  `validate:"required,uuid4"`
	ProjectID   string  `validate:"required,max=64"`
	CharacterID *string `validate:"omitempty,max=64"`
	Text        string  `validate:"required"`
	Expression  *string `validate:"omitempty,max=100"`
	Position    string  `validate:"max=50"`
	Order       int
	Metadata    map[string]any
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating Line struct
func (l *Line) Validate() error {
	if err := domain.ValidateStruct(l); err != nil {
		return fmt.Errorf("dialogue line: %w", err)
	}
	return nil
}

// IsNarration reports whether the line has no speaker.
func (l *Line) IsNarration() bool {
	return l.CharacterID == nil || *l.CharacterID == ""
}

// LineUpdate carries the fields of a partial line update; nil fields are left unchanged.
// ClearCharacter turns the line into narration.
type LineUpdate struct {
	CharacterID    *string
	ClearCharacter bool
	Text           *string
	Expression     *string
	Position       *string
	Order          *int
	Metadata       map[string]any
}

// Apply copies the set fields of u onto l.
func (u *LineUpdate) Apply(l *Line) {
	if u.ClearCharacter {
		l.CharacterID = nil
	} else if u.CharacterID != nil {
		l.CharacterID = u.CharacterID
	}
	if u.Text != nil {
		l.Text = *u.Text
	}
	if u.Expression != nil {
		l.Expression = u.Expression
	}
	if u.Position != nil {
		l.Position = *u.Position
	}
	if u.Order != nil {
		l.Order = *u.Order
	}
	if u.Metadata != nil {
		l.Metadata = u.Metadata
	}
}
