//go:build unit
// +build unit

package v1

import (
	"net/http"
	"testing"

	"github.com/MGTheTrain/renpy-visual-editor/internal/domain"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/export"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testScript = "define config.name = \"Demo\"\n\nlabel start:\n    return\n"

func TestExportHandler_Export_JSON(t *testing.T) {
	mockService := new(MockScriptExportService)
	handler := NewExportHandler(mockService)

	mockService.On("Export", mock.Anything, "project-123").
		Return(&export.Script{ProjectID: "project-123", Filename: export.ScriptFilename, Content: testScript}, nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/api/export/project-123", nil)
	c.Params = gin.Params{{Key: "project_id", Value: "project-123"}}

	handler.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := testutil.DecodeJSON[ExportResponse](t, w)
	assert.Equal(t, "script.rpy", response.Filename)
	assert.Equal(t, testScript, response.Script)
	mockService.AssertExpectations(t)
}

func TestExportHandler_Export_Raw(t *testing.T) {
	mockService := new(MockScriptExportService)
	handler := NewExportHandler(mockService)

	mockService.On("Export", mock.Anything, "project-123").
		Return(&export.Script{ProjectID: "project-123", Filename: export.ScriptFilename, Content: testScript}, nil)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/api/export/project-123?format=raw", nil)
	c.Params = gin.Params{{Key: "project_id", Value: "project-123"}}

	handler.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testScript, w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="script.rpy"`, w.Header().Get("Content-Disposition"))
}

func TestExportHandler_Export_Errors(t *testing.T) {
	mockService := new(MockScriptExportService)
	handler := NewExportHandler(mockService)

	mockService.On("Export", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	c, w := testutil.NewJSONContext(t, http.MethodPost, "/api/export/missing", nil)
	c.Params = gin.Params{{Key: "project_id", Value: "missing"}}
	handler.Export(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Project not found", testutil.DecodeJSON[ErrorResponse](t, w).Detail)

	c, w = testutil.NewJSONContext(t, http.MethodPost, "/api/export/project-123?format=xml", nil)
	c.Params = gin.Params{{Key: "project_id", Value: "project-123"}}
	handler.Export(c)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockService.AssertNotCalled(t, "Export", mock.Anything, "project-123")
}
