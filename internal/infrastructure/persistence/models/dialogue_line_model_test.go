//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/stretchr/testify/assert"
)

func TestDialogueLineModel_FromDomain(t *testing.T) {
	characterID := "c1"
	expression := "happy"
	line := &dialogue.Line{
		ID:          "l1",
		ProjectID:   "p1",
		CharacterID: &characterID,
		Text:        "Hello!",
		Expression:  &expression,
		Position:    dialogue.PositionRight,
		Order:       3,
		Metadata:    map[string]any{"note": "first"},
		CreatedAt:   time.Now().UTC(),
	}

	model := &DialogueLineModel{}
	model.FromDomain(line)

	assert.Equal(t, &characterID, model.CharacterID)
	assert.Equal(t, 3, model.Order)
	assert.Equal(t, "right", model.Position)
	assert.Equal(t, "first", model.Metadata["note"])
}

func TestDialogueLineModel_ToDomainNarration(t *testing.T) {
	model := &DialogueLineModel{ID: "l1", ProjectID: "p1", Text: "The wind howls.", Position: "left"}

	line := model.ToDomain()

	assert.True(t, line.IsNarration())
	assert.Equal(t, map[string]any{}, line.Metadata)
}

func TestAll_MigrationOrder(t *testing.T) {
	all := All()

	assert.IsType(t, &ProjectModel{}, all[0])
	assert.IsType(t, &CharacterModel{}, all[1])
	assert.IsType(t, &DialogueLineModel{}, all[2])
}
