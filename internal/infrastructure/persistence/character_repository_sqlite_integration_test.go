//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterSqliteRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t, "Demo")
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	alice := CreateTestCharacter(t, project, "Alice")
	bio := "Protagonist"
	alice.Bio = &bio
	require.NoError(t, ctx.CharacterRepo.Create(context.Background(), alice))

	fetched, err := ctx.CharacterRepo.GetByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", fetched.Name)
	assert.Equal(t, project.ID, fetched.ProjectID)
	assert.Equal(t, alice.Expressions, fetched.Expressions)
	assert.Equal(t, &bio, fetched.Bio)
	assert.Nil(t, fetched.VoiceTag)
}

func TestCharacterSqliteRepository_Create_UnknownProject(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	ghost := CreateTestProject(t, "Ghost")
	err := ctx.CharacterRepo.Create(context.Background(), CreateTestCharacter(t, ghost, "Alice"))
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestCharacterSqliteRepository_Create_InvalidColor(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t, "Demo")
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))

	character := CreateTestCharacter(t, project, "Alice")
	character.Color = "red"
	err := ctx.CharacterRepo.Create(context.Background(), character)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCharacterSqliteRepository_ListByProject(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t, "Demo")
	other := CreateTestProject(t, "Other")
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), other))

	require.NoError(t, ctx.CharacterRepo.Create(context.Background(), CreateTestCharacter(t, project, "Alice")))
	require.NoError(t, ctx.CharacterRepo.Create(context.Background(), CreateTestCharacter(t, project, "Bob")))
	require.NoError(t, ctx.CharacterRepo.Create(context.Background(), CreateTestCharacter(t, other, "Carol")))

	list, err := ctx.CharacterRepo.ListByProject(context.Background(), project.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	empty, err := ctx.CharacterRepo.ListByProject(context.Background(), "no-such-project")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestCharacterSqliteRepository_UpdateByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t, "Demo")
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))
	alice := CreateTestCharacter(t, project, "Alice")
	require.NoError(t, ctx.CharacterRepo.Create(context.Background(), alice))

	alice.Color = "#00FF00"
	alice.Expressions = []characters.Expression{}
	require.NoError(t, ctx.CharacterRepo.UpdateByID(context.Background(), alice))

	fetched, err := ctx.CharacterRepo.GetByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "#00FF00", fetched.Color)
	assert.Empty(t, fetched.Expressions)
}

func TestCharacterSqliteRepository_DeleteByID_KeepsLinesAsNarration(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	project := CreateTestProject(t, "Demo")
	require.NoError(t, ctx.ProjectRepo.Create(context.Background(), project))
	alice := CreateTestCharacter(t, project, "Alice")
	require.NoError(t, ctx.CharacterRepo.Create(context.Background(), alice))
	line := CreateTestLine(t, project, alice, "Hello!", 0)
	require.NoError(t, ctx.LineRepo.Create(context.Background(), line))

	require.NoError(t, ctx.CharacterRepo.DeleteByID(context.Background(), alice.ID))

	_, err := ctx.CharacterRepo.GetByID(context.Background(), alice.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	fetched, err := ctx.LineRepo.GetByID(context.Background(), line.ID)
	require.NoError(t, err)
	assert.True(t, fetched.IsNarration())

	assert.ErrorIs(t, ctx.CharacterRepo.DeleteByID(context.Background(), alice.ID), domain.ErrNotFound)
}
