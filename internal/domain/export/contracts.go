package export

import (
	"context"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
)

// ScriptFilename is the file name Ren'Py loads the game script from.
const ScriptFilename = "script.rpy"

// Script is a rendered Ren'Py script of one project
type Script struct {
	ProjectID string
	Filename  string
	Content   string
}

// ScriptExportService defines the use case of exporting a project as a Ren'Py script.
type ScriptExportService interface {
	// Export renders the characters and dialogue of a project.
	// ErrNotFound is returned when the project does not exist.
	Export(ctx context.Context, projectID string) (*Script, error)
}

// ScriptRenderer turns a project snapshot into Ren'Py script text.
// Lines must already be sorted in playback order.
type ScriptRenderer interface {
	Render(project *projects.Project, characters []*characters.Character, lines []*dialogue.Line) (string, error)
}
