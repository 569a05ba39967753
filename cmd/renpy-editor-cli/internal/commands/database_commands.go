package commands

import (
	"fmt"

	"github.com/MGTheTrain/renpy-visual-editor/internal/app"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/export"
	"github.com/MGTheTrain/renpy-visual-editor/internal/infrastructure/persistence"
	"github.com/MGTheTrain/renpy-visual-editor/internal/infrastructure/renpy"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/config"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// DatabaseCommandHandler runs commands directly against the editor database.
type DatabaseCommandHandler struct {
	logger logger.Logger
	// connect opens the configured database; tests replace it
	connect func() (*gorm.DB, error)
}

// NewDatabaseCommandHandler initializes a DatabaseCommandHandler reading the REST API configuration
func NewDatabaseCommandHandler() (*DatabaseCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DatabaseCommandHandler{
		logger: loggerInstance,
		connect: func() (*gorm.DB, error) {
			cfg, err := config.InitializeRestConfig(configPath())
			if err != nil {
				return nil, err
			}
			return persistence.NewDBConnection(cfg.Database)
		},
	}, nil
}

// MigrateCmd creates or updates the editor schema
func (commandHandler *DatabaseCommandHandler) MigrateCmd(_ *cobra.Command, _ []string) {
	db, err := commandHandler.connect()
	if err != nil {
		commandHandler.logger.Error("failed to connect to database: ", err)
		return
	}
	defer func() { _ = persistence.CloseDB(db) }()

	if err := persistence.AutoMigrate(db); err != nil {
		commandHandler.logger.Error("failed to migrate schema: ", err)
		return
	}
	commandHandler.logger.Info("Database migrations completed successfully")
}

// ExportCmd renders the script of a project without a running server
func (commandHandler *DatabaseCommandHandler) ExportCmd(cmd *cobra.Command, _ []string) {
	projectID, err := cmd.Flags().GetString("project-id")
	if err != nil {
		commandHandler.logger.Error("invalid project-id flag ", err)
		return
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		commandHandler.logger.Error("invalid output flag ", err)
		return
	}

	db, err := commandHandler.connect()
	if err != nil {
		commandHandler.logger.Error("failed to connect to database: ", err)
		return
	}
	defer func() { _ = persistence.CloseDB(db) }()

	exportService, err := commandHandler.exportService(db)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	script, err := exportService.Export(cmd.Context(), projectID)
	if err != nil {
		commandHandler.logger.Error("failed to export project ", projectID, ": ", err)
		return
	}

	if err := writeOutput(cmd.OutOrStdout(), output, script.Content); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	if output != "" && output != "-" {
		commandHandler.logger.Info("Wrote ", script.Filename, " of project ", projectID, " to ", output)
	}
}

func (commandHandler *DatabaseCommandHandler) exportService(db *gorm.DB) (export.ScriptExportService, error) {
	projectRepo, err := persistence.NewGormProjectRepository(db, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}
	characterRepo, err := persistence.NewGormCharacterRepository(db, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}
	lineRepo, err := persistence.NewGormLineRepository(db, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create dialogue line repository: %w", err)
	}
	writer, err := renpy.NewWriter()
	if err != nil {
		return nil, fmt.Errorf("failed to create script writer: %w", err)
	}
	return app.NewScriptExportService(projectRepo, characterRepo, lineRepo, writer, commandHandler.logger)
}

// InitDatabaseCommands registers database commands
func InitDatabaseCommands(rootCmd *cobra.Command) error {
	handler, err := NewDatabaseCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create database command handler: %w", err)
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the editor database schema",
		Run:   handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a project as a Ren'Py script straight from the database",
		Run:   handler.ExportCmd,
	}
	exportCmd.Flags().StringP("project-id", "p", "", "ID of the project to export")
	exportCmd.Flags().StringP("output", "o", "", "Path of the script file (stdout when empty)")
	_ = exportCmd.MarkFlagRequired("project-id")
	rootCmd.AddCommand(exportCmd)

	return nil
}
