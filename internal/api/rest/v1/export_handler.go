package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/export"

	"github.com/gin-gonic/gin"
)

// Export formats selected with the format query parameter
const (
	ExportFormatJSON = "json"
	ExportFormatRaw  = "raw"
)

// ExportHandler defines the interface for exporting projects as scripts
type ExportHandler interface {
	Export(ctx *gin.Context)
}

type exportHandler struct {
	exportService export.ScriptExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService export.ScriptExportService) ExportHandler {
	return &exportHandler{
		exportService: exportService,
	}
}

// Export handles the POST request to render a project as a Ren'Py script
// @Summary Export a project as script.rpy
// @Tags Export
// @Produce json
// @Produce plain
// @Param project_id path string true "Project ID"
// @Param format query string false "json (default) or raw"
// @Success 200 {object} ExportResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /export/{project_id} [post]
func (handler *exportHandler) Export(ctx *gin.Context) {
	format := ctx.DefaultQuery("format", ExportFormatJSON)
	if format != ExportFormatJSON && format != ExportFormatRaw {
		abortWithDetail(ctx, http.StatusUnprocessableEntity, fmt.Sprintf("unsupported export format %q", format))
		return
	}

	script, err := handler.exportService.Export(ctx, ctx.Param("project_id"))
	if err != nil {
		respondError(ctx, err, projectNotFound)
		return
	}

	exportsTotal.WithLabelValues(format).Inc()

	if format == ExportFormatRaw {
		ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", script.Filename))
		ctx.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(script.Content))
		return
	}
	ctx.JSON(http.StatusOK, NewExportResponse(script))
}
