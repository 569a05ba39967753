package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"

	"github.com/gin-gonic/gin"
)

// Fixed details of 404 responses
const (
	projectNotFound   = "Project not found"
	characterNotFound = "Character not found"
	lineNotFound      = "Dialogue line not found"
)

func abortWithDetail(ctx *gin.Context, status int, detail string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Detail: detail})
}

// bindJSON decodes the request body into request and runs its validation.
// It writes the error response and returns false on failure.
func bindJSON(ctx *gin.Context, request interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		abortWithDetail(ctx, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	if err := request.Validate(); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, err.Error())
		return false
	}
	return true
}

// respondError maps a service error onto a status code. Unexpected errors
// are attached to the context for the request logger and hidden from clients.
func respondError(ctx *gin.Context, err error, notFoundDetail string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		abortWithDetail(ctx, http.StatusNotFound, notFoundDetail)
	case errors.Is(err, domain.ErrValidation):
		abortWithDetail(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrInvalidReference):
		abortWithDetail(ctx, http.StatusUnprocessableEntity, "referenced project or character does not exist")
	default:
		_ = ctx.Error(err)
		abortWithDetail(ctx, http.StatusInternalServerError, "internal server error")
	}
}
