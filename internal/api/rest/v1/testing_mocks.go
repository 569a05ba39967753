//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/export"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"

	"github.com/stretchr/testify/mock"
)

// MockProjectService is a mock implementation of ProjectService
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, project *projects.Project) (*projects.Project, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, query *projects.ProjectQuery) ([]*projects.Project, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*projects.Project), args.Error(1)
}

func (m *MockProjectService) GetByID(ctx context.Context, projectID string) (*projects.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) UpdateByID(ctx context.Context, projectID string, update *projects.ProjectUpdate) (*projects.Project, error) {
	args := m.Called(ctx, projectID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*projects.Project), args.Error(1)
}

func (m *MockProjectService) DeleteByID(ctx context.Context, projectID string) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

// MockCharacterService is a mock implementation of CharacterService
type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) Create(ctx context.Context, character *characters.Character) (*characters.Character, error) {
	args := m.Called(ctx, character)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*characters.Character), args.Error(1)
}

func (m *MockCharacterService) ListByProject(ctx context.Context, projectID string) ([]*characters.Character, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*characters.Character), args.Error(1)
}

func (m *MockCharacterService) GetByID(ctx context.Context, characterID string) (*characters.Character, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*characters.Character), args.Error(1)
}

func (m *MockCharacterService) UpdateByID(ctx context.Context, characterID string, update *characters.CharacterUpdate) (*characters.Character, error) {
	args := m.Called(ctx, characterID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*characters.Character), args.Error(1)
}

func (m *MockCharacterService) DeleteByID(ctx context.Context, characterID string) error {
	args := m.Called(ctx, characterID)
	return args.Error(0)
}

// MockLineService is a mock implementation of LineService
type MockLineService struct {
	mock.Mock
}

func (m *MockLineService) Add(ctx context.Context, line *dialogue.Line) (*dialogue.Line, error) {
	args := m.Called(ctx, line)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dialogue.Line), args.Error(1)
}

func (m *MockLineService) ListByProject(ctx context.Context, projectID string) ([]*dialogue.Line, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dialogue.Line), args.Error(1)
}

func (m *MockLineService) GetByID(ctx context.Context, lineID string) (*dialogue.Line, error) {
	args := m.Called(ctx, lineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dialogue.Line), args.Error(1)
}

func (m *MockLineService) UpdateByID(ctx context.Context, lineID string, update *dialogue.LineUpdate) (*dialogue.Line, error) {
	args := m.Called(ctx, lineID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dialogue.Line), args.Error(1)
}

func (m *MockLineService) DeleteByID(ctx context.Context, lineID string) error {
	args := m.Called(ctx, lineID)
	return args.Error(0)
}

// MockScriptExportService is a mock implementation of ScriptExportService
type MockScriptExportService struct {
	mock.Mock
}

func (m *MockScriptExportService) Export(ctx context.Context, projectID string) (*export.Script, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*export.Script), args.Error(1)
}
