//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLine(order int) *dialogue.Line {
	characterID := "char-123"
	now := time.Now().UTC()
	return &dialogue.Line{
		ID:          "line-123",
		ProjectID:   "project-123",
		CharacterID: &characterID,
		Text:        "Hello!",
		Position:    dialogue.PositionLeft,
		Order:       order,
		Metadata:    map[string]any{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestDialogueHandler_AddLine_Success(t *testing.T) {
	mockService := new(MockLineService)
	handler := NewDialogueHandler(mockService)

	mockService.
		On("Add", mock.Anything, mock.MatchedBy(func(l *dialogue.Line) bool {
			return l.ProjectID == "project-123" && l.Text == "Hello!" && l.Order == 2 && *l.CharacterID == "char-123"
		})).
		Return(testLine(2), nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/api/dialogue/project-123/lines", map[string]any{
		"character_id": "char-123",
		"text":         "Hello!",
		"order":        2,
	})
	c.Params = gin.Params{{Key: "project_id", Value: "project-123"}}

	handler.AddLine(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := testutil.DecodeJSON[LineResponse](t, w)
	assert.Equal(t, 2, response.Order)
	assert.Equal(t, "left", response.Position)
	mockService.AssertExpectations(t)
}

func TestDialogueHandler_AddLine_MissingText(t *testing.T) {
	mockService := new(MockLineService)
	handler := NewDialogueHandler(mockService)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/api/dialogue/project-123/lines", map[string]any{"order": 1})
	c.Params = gin.Params{{Key: "project_id", Value: "project-123"}}

	handler.AddLine(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockService.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestDialogueHandler_AddLine_UnknownCharacter(t *testing.T) {
	mockService := new(MockLineService)
	handler := NewDialogueHandler(mockService)

	mockService.On("Add", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidReference)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/api/dialogue/project-123/lines", map[string]any{"character_id": "ghost", "text": "Boo"})
	c.Params = gin.Params{{Key: "project_id", Value: "project-123"}}

	handler.AddLine(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDialogueHandler_ListLines(t *testing.T) {
	mockService := new(MockLineService)
	handler := NewDialogueHandler(mockService)

	mockService.On("ListByProject", mock.Anything, "project-123").Return([]*dialogue.Line{testLine(0), testLine(1)}, nil)

	c, w := testutil.NewJSONContext(t, http.MethodGet, "/api/dialogue/project-123/lines", nil)
	c.Params = gin.Params{{Key: "project_id", Value: "project-123"}}

	handler.ListLines(c)

	assert.Equal(t, http.StatusOK, w.Code)
	lines := testutil.DecodeJSON[[]LineResponse](t, w)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[1].Order)
}

func TestDialogueHandler_UpdateLine_EmptyCharacterClearsSpeaker(t *testing.T) {
	mockService := new(MockLineService)
	handler := NewDialogueHandler(mockService)

	narration := testLine(0)
	narration.CharacterID = nil
	mockService.
		On("UpdateByID", mock.Anything, "line-123", mock.MatchedBy(func(u *dialogue.LineUpdate) bool {
			return u.ClearCharacter && u.CharacterID == nil
		})).
		Return(narration, nil)

	c, w := testutil.NewJSONContext(t, http.MethodPut, "/api/dialogue/line/line-123", map[string]any{"character_id": ""})
	c.Params = gin.Params{{Key: "line_id", Value: "line-123"}}

	handler.UpdateLine(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, testutil.DecodeJSON[LineResponse](t, w).CharacterID)
	mockService.AssertExpectations(t)
}

func TestDialogueHandler_GetAndDeleteLine_NotFound(t *testing.T) {
	mockService := new(MockLineService)
	handler := NewDialogueHandler(mockService)

	mockService.On("GetByID", mock.Anything, "missing").Return(nil, domain.ErrNotFound)
	mockService.On("DeleteByID", mock.Anything, "missing").Return(domain.ErrNotFound)

	c, w := testutil.NewJSONContext(t, http.MethodGet, "/api/dialogue/line/missing", nil)
	c.Params = gin.Params{{Key: "line_id", Value: "missing"}}
	handler.GetLine(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Dialogue line not found", testutil.DecodeJSON[ErrorResponse](t, w).Detail)

	c, w = testutil.NewJSONContext(t, http.MethodDelete, "/api/dialogue/line/missing", nil)
	c.Params = gin.Params{{Key: "line_id", Value: "missing"}}
	handler.DeleteLine(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
