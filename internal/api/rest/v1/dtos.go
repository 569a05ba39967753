package v1

import (
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/export"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// InfoResponse is returned by the root liveness probe
type InfoResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// HealthResponse is returned by the health probe
type HealthResponse struct {
	Status string `json:"status"`
}

// ProjectResponse represents a project
type ProjectResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Config      map[string]any `json:"config"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CreateProjectRequest represents the input for creating a project
type CreateProjectRequest struct {
	Name        string         `json:"name" validate:"required,min=1,max=255"`
	Description *string        `json:"description" validate:"omitempty,max=4096"`
	Config      map[string]any `json:"config"`
}

// Validate for validating CreateProjectRequest struct
func (r *CreateProjectRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain maps the request onto a new project.
func (r *CreateProjectRequest) ToDomain() *projects.Project {
	return &projects.Project{
		Name:        r.Name,
		Description: r.Description,
		Config:      r.Config,
	}
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Name        *string        `json:"name" validate:"omitempty,min=1,max=255"`
	Description *string        `json:"description" validate:"omitempty,max=4096"`
	Config      map[string]any `json:"config"`
}

// Validate for validating UpdateProjectRequest struct
func (r *UpdateProjectRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain maps the request onto a project update.
func (r *UpdateProjectRequest) ToDomain() *projects.ProjectUpdate {
	return &projects.ProjectUpdate{
		Name:        r.Name,
		Description: r.Description,
		Config:      r.Config,
	}
}

// NewProjectResponse maps a project onto its response
func NewProjectResponse(p *projects.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Config:      p.Config,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ExpressionDTO represents a character expression in requests and responses
type ExpressionDTO struct {
	Name      string  `json:"name" validate:"required,min=1,max=100"`
	ImagePath string  `json:"image_path" validate:"required,min=1,max=1024"`
	Thumbnail *string `json:"thumbnail" validate:"omitempty,max=1024"`
}

// CharacterResponse represents a character
type CharacterResponse struct {
	ID          string          `json:"id"`
	ProjectID   string          `json:"project_id"`
	Name        string          `json:"name"`
	Color       string          `json:"color"`
	VoiceTag    *string         `json:"voice_tag"`
	Bio         *string         `json:"bio"`
	Expressions []ExpressionDTO `json:"expressions"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateCharacterRequest represents the input for creating a character.
// Color accepts hex colors only, where earlier clients could store any string.
type CreateCharacterRequest struct {
	ProjectID   string          `json:"project_id" validate:"required,max=64"`
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	Color       *string         `json:"color" validate:"omitempty,hexcolor"`
	VoiceTag    *string         `json:"voice_tag" validate:"omitempty,max=255"`
	Bio         *string         `json:"bio" validate:"omitempty,max=8192"`
	Expressions []ExpressionDTO `json:"expressions" validate:"omitempty,dive"`
}

// Validate for validating CreateCharacterRequest struct
func (r *CreateCharacterRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain maps the request onto a new character; a missing color becomes the default color.
func (r *CreateCharacterRequest) ToDomain() *characters.Character {
	color := characters.DefaultColor
	if r.Color != nil {
		color = *r.Color
	}
	return &characters.Character{
		ProjectID:   r.ProjectID,
		Name:        r.Name,
		Color:       color,
		VoiceTag:    r.VoiceTag,
		Bio:         r.Bio,
		Expressions: expressionsToDomain(r.Expressions),
	}
}

// UpdateCharacterRequest represents a partial character update
type UpdateCharacterRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Color       *string          `json:"color" validate:"omitempty,hexcolor"`
	VoiceTag    *string          `json:"voice_tag" validate:"omitempty,max=255"`
	Bio         *string          `json:"bio" validate:"omitempty,max=8192"`
	Expressions *[]ExpressionDTO `json:"expressions" validate:"omitempty,dive"`
}

// Validate for validating UpdateCharacterRequest struct
func (r *UpdateCharacterRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain maps the request onto a character update.
func (r *UpdateCharacterRequest) ToDomain() *characters.CharacterUpdate {
	update := &characters.CharacterUpdate{
		Name:     r.Name,
		Color:    r.Color,
		VoiceTag: r.VoiceTag,
		Bio:      r.Bio,
	}
	if r.Expressions != nil {
		expressions := expressionsToDomain(*r.Expressions)
		update.Expressions = &expressions
	}
	return update
}

// NewCharacterResponse maps a character onto its response
func NewCharacterResponse(c *characters.Character) CharacterResponse {
	expressions := make([]ExpressionDTO, len(c.Expressions))
	for i, e := range c.Expressions {
		expressions[i] = ExpressionDTO{Name: e.Name, ImagePath: e.ImagePath, Thumbnail: e.Thumbnail}
	}
	return CharacterResponse{
		ID:          c.ID,
		ProjectID:   c.ProjectID,
		Name:        c.Name,
		Color:       c.Color,
		VoiceTag:    c.VoiceTag,
		Bio:         c.Bio,
		Expressions: expressions,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func expressionsToDomain(dtos []ExpressionDTO) []characters.Expression {
	expressions := make([]characters.Expression, len(dtos))
	for i, e := range dtos {
		expressions[i] = characters.Expression{Name: e.Name, ImagePath: e.ImagePath, Thumbnail: e.Thumbnail}
	}
	return expressions
}

// LineResponse represents a dialogue line
type LineResponse struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"project_id"`
	CharacterID *string        `json:"character_id"`
	Text        string         `json:"text"`
	Expression  *string        `json:"expression"`
	Position    string         `json:"position"`
	Order       int            `json:"order"`
	Metadata    map[string]any `json:"metadata"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// CreateLineRequest represents the input for adding a dialogue line.
// Omitting character_id makes the line narration.
type CreateLineRequest struct {
	CharacterID *string        `json:"character_id" validate:"omitempty,max=64"`
	Text        string         `json:"text" validate:"required"`
	Expression  *string        `json:"expression" validate:"omitempty,max=100"`
	Position    string         `json:"position" validate:"omitempty,max=50"`
	Order       int            `json:"order"`
	Metadata    map[string]any `json:"metadata"`
}

// Validate for validating CreateLineRequest struct
func (r *CreateLineRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain maps the request onto a new line of project projectID.
func (r *CreateLineRequest) ToDomain(projectID string) *dialogue.Line {
	return &dialogue.Line{
		ProjectID:   projectID,
		CharacterID: r.CharacterID,
		Text:        r.Text,
		Expression:  r.Expression,
		Position:    r.Position,
		Order:       r.Order,
		Metadata:    r.Metadata,
	}
}

// UpdateLineRequest represents a partial dialogue line update.
// An empty character_id turns the line into narration.
type UpdateLineRequest struct {
	CharacterID *string        `json:"character_id" validate:"omitempty,max=64"`
	Text        *string        `json:"text" validate:"omitempty,min=1"`
	Expression  *string        `json:"expression" validate:"omitempty,max=100"`
	Position    *string        `json:"position" validate:"omitempty,max=50"`
	Order       *int           `json:"order"`
	Metadata    map[string]any `json:"metadata"`
}

// Validate for validating UpdateLineRequest struct
func (r *UpdateLineRequest) Validate() error {
	return validateRequest(r)
}

// ToDomain maps the request onto a line update.
func (r *UpdateLineRequest) ToDomain() *dialogue.LineUpdate {
	update := &dialogue.LineUpdate{
		Text:       r.Text,
		Expression: r.Expression,
		Position:   r.Position,
		Order:      r.Order,
		Metadata:   r.Metadata,
	}
	if r.CharacterID != nil && *r.CharacterID == "" {
		update.ClearCharacter = true
	} else {
		update.CharacterID = r.CharacterID
	}
	return update
}

// NewLineResponse maps a dialogue line onto its response
func NewLineResponse(l *dialogue.Line) LineResponse {
	return LineResponse{
		ID:          l.ID,
		ProjectID:   l.ProjectID,
		CharacterID: l.CharacterID,
		Text:        l.Text,
		Expression:  l.Expression,
		Position:    l.Position,
		Order:       l.Order,
		Metadata:    l.Metadata,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// ExportResponse carries an exported script
type ExportResponse struct {
	ProjectID string `json:"project_id"`
	Filename  string `json:"filename"`
	Script    string `json:"script"`
}

// NewExportResponse maps a script onto its response
func NewExportResponse(s *export.Script) ExportResponse {
	return ExportResponse{
		ProjectID: s.ProjectID,
		Filename:  s.Filename,
		Script:    s.Content,
	}
}

func validateRequest(r any) error {
	return domain.ValidateStruct(r)
}
