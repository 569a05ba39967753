package v1

import (
	"net/http"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"

	"github.com/gin-gonic/gin"
)

// DialogueHandler defines the interface for handling dialogue-related operations
type DialogueHandler interface {
	AddLine(ctx *gin.Context)
	ListLines(ctx *gin.Context)
	GetLine(ctx *gin.Context)
	UpdateLine(ctx *gin.Context)
	DeleteLine(ctx *gin.Context)
}

type dialogueHandler struct {
	lineService dialogue.LineService
}

// NewDialogueHandler creates a new DialogueHandler
func NewDialogueHandler(lineService dialogue.LineService) DialogueHandler {
	return &dialogueHandler{
		lineService: lineService,
	}
}

// AddLine handles the POST request to add a line to a project
// @Summary Add a dialogue line
// @Tags Dialogue
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param requestBody body CreateLineRequest true "Dialogue line"
// @Success 201 {object} LineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /dialogue/{project_id}/lines [post]
func (handler *dialogueHandler) AddLine(ctx *gin.Context) {
	var request CreateLineRequest
	if !bindJSON(ctx, &request) {
		return
	}

	line, err := handler.lineService.Add(ctx, request.ToDomain(ctx.Param("project_id")))
	if err != nil {
		respondError(ctx, err, lineNotFound)
		return
	}

	linesCreatedTotal.Inc()
	ctx.JSON(http.StatusCreated, NewLineResponse(line))
}

// ListLines handles the GET request to list the lines of a project in order
// @Summary List dialogue lines
// @Tags Dialogue
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {array} LineResponse
// @Router /dialogue/{project_id}/lines [get]
func (handler *dialogueHandler) ListLines(ctx *gin.Context) {
	lines, err := handler.lineService.ListByProject(ctx, ctx.Param("project_id"))
	if err != nil {
		respondError(ctx, err, lineNotFound)
		return
	}

	listResponse := make([]LineResponse, 0, len(lines))
	for _, l := range lines {
		listResponse = append(listResponse, NewLineResponse(l))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetLine handles the GET request to fetch a line by its ID
// @Summary Get a dialogue line
// @Tags Dialogue
// @Produce json
// @Param line_id path string true "Line ID"
// @Success 200 {object} LineResponse
// @Failure 404 {object} ErrorResponse
// @Router /dialogue/line/{line_id} [get]
func (handler *dialogueHandler) GetLine(ctx *gin.Context) {
	line, err := handler.lineService.GetByID(ctx, ctx.Param("line_id"))
	if err != nil {
		respondError(ctx, err, lineNotFound)
		return
	}
	ctx.JSON(http.StatusOK, NewLineResponse(line))
}

// UpdateLine handles the PUT request to update a line
// @Summary Update a dialogue line
// @Tags Dialogue
// @Accept json
// @Produce json
// @Param line_id path string true "Line ID"
// @Param requestBody body UpdateLineRequest true "Changed fields"
// @Success 200 {object} LineResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /dialogue/line/{line_id} [put]
func (handler *dialogueHandler) UpdateLine(ctx *gin.Context) {
	var request UpdateLineRequest
	if !bindJSON(ctx, &request) {
		return
	}

	line, err := handler.lineService.UpdateByID(ctx, ctx.Param("line_id"), request.ToDomain())
	if err != nil {
		respondError(ctx, err, lineNotFound)
		return
	}
	ctx.JSON(http.StatusOK, NewLineResponse(line))
}

// DeleteLine handles the DELETE request to delete a line
// @Summary Delete a dialogue line
// @Tags Dialogue
// @Param line_id path string true "Line ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /dialogue/line/{line_id} [delete]
func (handler *dialogueHandler) DeleteLine(ctx *gin.Context) {
	if err := handler.lineService.DeleteByID(ctx, ctx.Param("line_id")); err != nil {
		respondError(ctx, err, lineNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
