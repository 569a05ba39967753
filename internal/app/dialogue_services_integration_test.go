//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineService_AddAndList(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	project, err := services.ProjectService.Create(ctx, &projects.Project{Name: "Demo"})
	require.NoError(t, err)
	alice, err := services.CharacterService.Create(ctx, &characters.Character{ProjectID: project.ID, Name: "Alice"})
	require.NoError(t, err)

	second, err := services.LineService.Add(ctx, &dialogue.Line{ProjectID: project.ID, Text: "narration", Order: 1})
	require.NoError(t, err)
	assert.Equal(t, dialogue.PositionLeft, second.Position)
	assert.Nil(t, second.CharacterID)

	empty := ""
	_, err = services.LineService.Add(ctx, &dialogue.Line{ProjectID: project.ID, CharacterID: &empty, Text: "also narration", Order: 2})
	require.NoError(t, err)

	first, err := services.LineService.Add(ctx, &dialogue.Line{ProjectID: project.ID, CharacterID: &alice.ID, Text: "Hello", Position: dialogue.PositionCenter})
	require.NoError(t, err)

	lines, err := services.LineService.ListByProject(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, first.ID, lines[0].ID)
	assert.Equal(t, second.ID, lines[1].ID)
	assert.True(t, lines[2].IsNarration())
}

func TestLineService_Add_UnknownReferences(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.LineService.Add(ctx, &dialogue.Line{ProjectID: "missing", Text: "Hello"})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	project, err := services.ProjectService.Create(ctx, &projects.Project{Name: "Demo"})
	require.NoError(t, err)
	missing := "missing"
	_, err = services.LineService.Add(ctx, &dialogue.Line{ProjectID: project.ID, CharacterID: &missing, Text: "Hello"})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestLineService_UpdateAndDelete(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	project, err := services.ProjectService.Create(ctx, &projects.Project{Name: "Demo"})
	require.NoError(t, err)
	alice, err := services.CharacterService.Create(ctx, &characters.Character{ProjectID: project.ID, Name: "Alice"})
	require.NoError(t, err)
	line, err := services.LineService.Add(ctx, &dialogue.Line{ProjectID: project.ID, CharacterID: &alice.ID, Text: "Hello"})
	require.NoError(t, err)

	text := "Goodbye"
	updated, err := services.LineService.UpdateByID(ctx, line.ID, &dialogue.LineUpdate{Text: &text, ClearCharacter: true})
	require.NoError(t, err)
	assert.Equal(t, "Goodbye", updated.Text)
	assert.True(t, updated.IsNarration())

	require.NoError(t, services.LineService.DeleteByID(ctx, line.ID))
	_, err = services.LineService.GetByID(ctx, line.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
