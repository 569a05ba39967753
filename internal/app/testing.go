//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/export"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
	"github.com/MGTheTrain/renpy-visual-editor/internal/infrastructure/persistence"
	"github.com/MGTheTrain/renpy-visual-editor/internal/infrastructure/renpy"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	ProjectService   projects.ProjectService
	CharacterService characters.CharacterService
	LineService      dialogue.LineService
	ExportService    export.ScriptExportService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	projectService, err := NewProjectService(dbContext.ProjectRepo, log)
	require.NoError(t, err, "Failed to create project service")

	characterService, err := NewCharacterService(dbContext.CharacterRepo, log)
	require.NoError(t, err, "Failed to create character service")

	lineService, err := NewLineService(dbContext.LineRepo, log)
	require.NoError(t, err, "Failed to create dialogue line service")

	writer, err := renpy.NewWriter()
	require.NoError(t, err, "Failed to create script writer")

	exportService, err := NewScriptExportService(dbContext.ProjectRepo, dbContext.CharacterRepo, dbContext.LineRepo, writer, log)
	require.NoError(t, err, "Failed to create export service")

	return &TestServices{
		ProjectService:   projectService,
		CharacterService: characterService,
		LineService:      lineService,
		ExportService:    exportService,
		DBContext:        dbContext,
	}
}
