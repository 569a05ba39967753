//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Create_AppliesDefaults(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	project, err := services.ProjectService.Create(ctx, &projects.Project{
		Name:   "Demo",
		Config: map[string]any{projects.ConfigLanguage: "german"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.False(t, project.CreatedAt.IsZero())
	assert.Equal(t, project.CreatedAt, project.UpdatedAt)
	assert.Equal(t, "german", project.Config[projects.ConfigLanguage])
	assert.Equal(t, 1280, project.Config[projects.ConfigScreenWidth])

	other, err := services.ProjectService.Create(ctx, &projects.Project{Name: "Other"})
	require.NoError(t, err)
	assert.NotEqual(t, project.ID, other.ID)
}

func TestProjectService_Create_Invalid(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.ProjectService.Create(context.Background(), &projects.Project{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProjectService_UpdateByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	project, err := services.ProjectService.Create(ctx, &projects.Project{Name: "Demo"})
	require.NoError(t, err)

	name := "Renamed"
	updated, err := services.ProjectService.UpdateByID(ctx, project.ID, &projects.ProjectUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.False(t, updated.UpdatedAt.Before(project.CreatedAt))

	fetched, err := services.ProjectService.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", fetched.Name)
	assert.Equal(t, "english", fetched.Config[projects.ConfigLanguage])

	_, err = services.ProjectService.UpdateByID(ctx, "missing", &projects.ProjectUpdate{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectService_List(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	for _, name := range []string{"Alpha", "Beta"} {
		_, err := services.ProjectService.Create(ctx, &projects.Project{Name: name})
		require.NoError(t, err)
	}

	list, err := services.ProjectService.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestProjectService_DeleteByID_RemovesCharacters(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	project, err := services.ProjectService.Create(ctx, &projects.Project{Name: "Demo"})
	require.NoError(t, err)
	character, err := services.CharacterService.Create(ctx, &characters.Character{ProjectID: project.ID, Name: "Alice"})
	require.NoError(t, err)

	require.NoError(t, services.ProjectService.DeleteByID(ctx, project.ID))

	_, err = services.CharacterService.GetByID(ctx, character.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, services.ProjectService.DeleteByID(ctx, project.ID), domain.ErrNotFound)
}
