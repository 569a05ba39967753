//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/config"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	ProjectRepo   projects.ProjectRepository
	CharacterRepo characters.CharacterRepository
	LineRepo      dialogue.LineRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	projectRepo, err := NewGormProjectRepository(db, log)
	require.NoError(t, err, "Failed to create project repository")

	characterRepo, err := NewGormCharacterRepository(db, log)
	require.NoError(t, err, "Failed to create character repository")

	lineRepo, err := NewGormLineRepository(db, log)
	require.NoError(t, err, "Failed to create dialogue line repository")

	return &TestContext{
		DB:            db,
		ProjectRepo:   projectRepo,
		CharacterRepo: characterRepo,
		LineRepo:      lineRepo,
	}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// CreateTestProject builds a valid project with default config
func CreateTestProject(t *testing.T, name string) *projects.Project {
	t.Helper()

	ts := now()
	return &projects.Project{
		ID:        uuid.NewString(),
		Name:      name,
		Config:    projects.DefaultConfig(),
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// CreateTestCharacter builds a valid character of project
func CreateTestCharacter(t *testing.T, project *projects.Project, name string) *characters.Character {
	t.Helper()

	ts := now()
	return &characters.Character{
		ID:        uuid.NewString(),
		ProjectID: project.ID,
		Name:      name,
		Color:     characters.DefaultColor,
		Expressions: []characters.Expression{
			{Name: "happy", ImagePath: "images/" + strings.ToLower(name) + "_happy.png"},
		},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// CreateTestLine builds a valid dialogue line; a nil character makes it narration
func CreateTestLine(t *testing.T, project *projects.Project, character *characters.Character, text string, order int) *dialogue.Line {
	t.Helper()

	ts := now()
	line := &dialogue.Line{
		ID:        uuid.NewString(),
		ProjectID: project.ID,
		Text:      text,
		Position:  dialogue.PositionLeft,
		Order:     order,
		Metadata:  map[string]any{},
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if character != nil {
		line.CharacterID = &character.ID
	}
	return line
}
