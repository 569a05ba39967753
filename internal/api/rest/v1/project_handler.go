package v1

import (
	"net/http"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ProjectHandler defines the interface for handling project-related operations
type ProjectHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type projectHandler struct {
	projectService projects.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService projects.ProjectService) ProjectHandler {
	return &projectHandler{
		projectService: projectService,
	}
}

// Create handles the POST request to create a project
// @Summary Create a project
// @Tags Project
// @Accept json
// @Produce json
// @Param requestBody body CreateProjectRequest true "Project"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /projects/ [post]
func (handler *projectHandler) Create(ctx *gin.Context) {
	var request CreateProjectRequest
	if !bindJSON(ctx, &request) {
		return
	}

	project, err := handler.projectService.Create(ctx, request.ToDomain())
	if err != nil {
		respondError(ctx, err, projectNotFound)
		return
	}

	projectsCreatedTotal.Inc()
	ctx.JSON(http.StatusCreated, NewProjectResponse(project))
}

// List handles the GET request to list projects with optional query parameters
// @Summary List projects
// @Tags Project
// @Produce json
// @Param name query string false "Name contains"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "name, created_at or updated_at"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {array} ProjectResponse
// @Failure 422 {object} ErrorResponse
// @Router /projects/ [get]
func (handler *projectHandler) List(ctx *gin.Context) {
	query := projects.NewProjectQuery()

	if name := ctx.Query("name"); len(name) > 0 {
		query.Name = name
	}

	for param, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if raw := ctx.Query(param); len(raw) > 0 {
			n, err := strutil.ConvertToInt(raw)
			if err != nil {
				abortWithDetail(ctx, http.StatusUnprocessableEntity, param+": "+err.Error())
				return
			}
			*target = n
		}
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, err.Error())
		return
	}

	list, err := handler.projectService.List(ctx, query)
	if err != nil {
		respondError(ctx, err, projectNotFound)
		return
	}

	listResponse := make([]ProjectResponse, 0, len(list))
	for _, p := range list {
		listResponse = append(listResponse, NewProjectResponse(p))
	}
	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to fetch a project by its ID
// @Summary Get a project
// @Tags Project
// @Produce json
// @Param project_id path string true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Router /projects/{project_id} [get]
func (handler *projectHandler) GetByID(ctx *gin.Context) {
	project, err := handler.projectService.GetByID(ctx, ctx.Param("project_id"))
	if err != nil {
		respondError(ctx, err, projectNotFound)
		return
	}
	ctx.JSON(http.StatusOK, NewProjectResponse(project))
}

// UpdateByID handles the PUT request to update a project
// @Summary Update a project
// @Tags Project
// @Accept json
// @Produce json
// @Param project_id path string true "Project ID"
// @Param requestBody body UpdateProjectRequest true "Changed fields"
// @Success 200 {object} ProjectResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /projects/{project_id} [put]
func (handler *projectHandler) UpdateByID(ctx *gin.Context) {
	var request UpdateProjectRequest
	if !bindJSON(ctx, &request) {
		return
	}

	project, err := handler.projectService.UpdateByID(ctx, ctx.Param("project_id"), request.ToDomain())
	if err != nil {
		respondError(ctx, err, projectNotFound)
		return
	}
	ctx.JSON(http.StatusOK, NewProjectResponse(project))
}

// DeleteByID handles the DELETE request to delete a project with its characters and dialogue
// @Summary Delete a project
// @Tags Project
// @Param project_id path string true "Project ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /projects/{project_id} [delete]
func (handler *projectHandler) DeleteByID(ctx *gin.Context) {
	if err := handler.projectService.DeleteByID(ctx, ctx.Param("project_id")); err != nil {
		respondError(ctx, err, projectNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
