package projects

import (
	"fmt"
	"maps"
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
)

// Default configuration keys of a project
const (
	ConfigScreenWidth  = "screen_width"
	ConfigScreenHeight = "screen_height"
	ConfigLanguage     = "language"
)

// DefaultConfig returns the configuration a project starts with.
func DefaultConfig() map[string]any {
	return map[string]any{
		ConfigScreenWidth:  1280,
		ConfigScreenHeight: 720,
		ConfigLanguage:     "english",
	}
}

// Project is a game-editing workspace owning characters and dialogue lines
type Project struct {
	ID          string  `validate:"required,uuid4"`
	Name        string  `validate:"required,min=1,max=255"`
	Description *string `validate:"omitempty,max=4096"`
	Config      map[string]any
	CreatedAt   time.Time `validate:"required"`
	UpdatedAt   time.Time
}

// Validate for validating Project struct
func (p *Project) Validate() error {
	if err := domain.ValidateStruct(p); err != nil {
		return fmt.Errorf("project: %w", err)
	}
	return nil
}

// WithDefaultConfig overlays the supplied config on DefaultConfig.
func WithDefaultConfig(config map[string]any) map[string]any {
	merged := DefaultConfig()
	maps.Copy(merged, config)
	return merged
}

// ProjectUpdate carries the fields of a partial project update; nil fields are left unchanged.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Config      map[string]any
}

// Apply copies the set fields of u onto p.
func (u *ProjectUpdate) Apply(p *Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = u.Description
	}
	if u.Config != nil {
		p.Config = u.Config
	}
}
