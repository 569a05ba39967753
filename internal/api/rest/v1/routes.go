package v1

import (
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/export"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the liveness probes and every editor API route.
func SetupRoutes(r *gin.Engine,
	projectService projects.ProjectService,
	characterService characters.CharacterService,
	lineService dialogue.LineService,
	exportService export.ScriptExportService) {

	r.GET("/", Root)
	r.GET("/health", Health)

	api := r.Group(BasePath)

	projectHandler := NewProjectHandler(projectService)
	projectRoutes := api.Group("/projects")
	projectRoutes.POST("/", projectHandler.Create)
	projectRoutes.GET("/", projectHandler.List)
	projectRoutes.GET("/:project_id", projectHandler.GetByID)
	projectRoutes.PUT("/:project_id", projectHandler.UpdateByID)
	projectRoutes.DELETE("/:project_id", projectHandler.DeleteByID)

	characterHandler := NewCharacterHandler(characterService)
	characterRoutes := api.Group("/characters")
	characterRoutes.POST("/", characterHandler.Create)
	characterRoutes.GET("/:project_id", characterHandler.ListByProject)
	characterRoutes.GET("/character/:character_id", characterHandler.GetByID)
	characterRoutes.PUT("/:character_id", characterHandler.UpdateByID)
	characterRoutes.DELETE("/:character_id", characterHandler.DeleteByID)

	dialogueHandler := NewDialogueHandler(lineService)
	dialogueRoutes := api.Group("/dialogue")
	dialogueRoutes.POST("/:project_id/lines", dialogueHandler.AddLine)
	dialogueRoutes.GET("/:project_id/lines", dialogueHandler.ListLines)
	dialogueRoutes.GET("/line/:line_id", dialogueHandler.GetLine)
	dialogueRoutes.PUT("/line/:line_id", dialogueHandler.UpdateLine)
	dialogueRoutes.DELETE("/line/:line_id", dialogueHandler.DeleteLine)

	exportHandler := NewExportHandler(exportService)
	api.POST("/export/:project_id", exportHandler.Export)
}
