package v1

import (
	"net/http"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"

	"github.com/gin-gonic/gin"
)

// CharacterHandler defines the interface for handling character-related operations
type CharacterHandler interface {
	Create(ctx *gin.Context)
	ListByProject(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type characterHandler struct {
	characterService characters.CharacterService
}

// NewCharacterHandler creates a new CharacterHandler
func NewCharacterHandler(characterService characters.CharacterService) CharacterHandler {
	return &characterHandler{
		characterService: characterService,
	}
}

// Create handles the POST request to create a character
// @Summary Create a character
// @Description color must be a hex color (#RGB or #RRGGBB) and defaults to #FFFFFF; other strings are rejected with 422
// @Tags Character
// @Accept json
// @Produce json
// @Param requestBody body CreateCharacterRequest true "Character"
// @Success 201 {object} CharacterResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /characters/ [post]
func (handler *characterHandler) Create(ctx *gin.Context) {
	var request CreateCharacterRequest
	if !bindJSON(ctx, &request) {
		return
	}

	character, err := handler.characterService.Create(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, err, characterNotFound)
		return
	}

	charactersCreatedTotal.Inc()
	ctx.JSON(http.StatusCreated, NewCharacterResponse(character))
}

// ListByProject handles the GET request to list the characters of a project
// @Summary List the characters of a project
// @Tags Character
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {array} CharacterResponse
// @Router /characters/{project_id} [get]
func (handler *characterHandler) ListByProject(ctx *gin.Context) {
	list, err := handler.characterService.ListByProject(ctx, ctx.Param("project_id"))
	if err != nil {
		respondError(ctx, err, characterNotFound)
		return
	}

	listResponse := make([]CharacterResponse, 0, len(list))
	for _, c := range list {
		listResponse = append(listResponse, NewCharacterResponse(c))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to fetch a character by its ID
// @Summary Get a character
// @Tags Character
// @Produce json
// @Param character_id path string true "Character ID"
// @Success 200 {object} CharacterResponse
// @Failure 404 {object} ErrorResponse
// @Router /characters/character/{character_id} [get]
func (handler *characterHandler) GetByID(ctx *gin.Context) {
	character, err := handler.characterService.GetByID(ctx, ctx.Param("character_id"))
	if err != nil {
		respondError(ctx, err, characterNotFound)
		return
	}
	ctx.JSON(http.StatusOK, NewCharacterResponse(character))
}

// UpdateByID handles the PUT request to update a character
// @Summary Update a character
// @Description a supplied color must be a hex color (#RGB or #RRGGBB); other strings are rejected with 422
// @Tags Character
// @Accept json
// @Produce json
// @Param character_id path string true "Character ID"
// @Param requestBody body UpdateCharacterRequest true "Changed fields"
// @Success 200 {object} CharacterResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /characters/{character_id} [put]
func (handler *characterHandler) UpdateByID(ctx *gin.Context) {
	var request UpdateCharacterRequest
	if !bindJSON(ctx, &request) {
		return
	}

	character, err := handler.characterService.UpdateByID(ctx, ctx.Param("character_id"), request.ToDomain())
	if err != nil {
		respondError(ctx, err, characterNotFound)
		return
	}
	ctx.JSON(http.StatusOK, NewCharacterResponse(character))
}

// DeleteByID handles the DELETE request to delete a character; its lines become narration
// @Summary Delete a character
// @Tags Character
// @Param character_id path string true "Character ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /characters/{character_id} [delete]
func (handler *characterHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.characterService.DeleteByID(ctx, ctx.Param("character_id")); err != nil {
		respondError(ctx, err, characterNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
