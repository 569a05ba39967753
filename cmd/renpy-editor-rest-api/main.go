// cmd/renpy-editor-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/renpy-visual-editor/internal/api/rest/v1"
	"github.com/MGTheTrain/renpy-visual-editor/internal/app"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/characters"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/dialogue"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/export"
	"github.com/MGTheTrain/renpy-visual-editor/internal/domain/projects"
	"github.com/MGTheTrain/renpy-visual-editor/internal/infrastructure/persistence"
	"github.com/MGTheTrain/renpy-visual-editor/internal/infrastructure/renpy"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/config"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/zsais/go-gin-prometheus"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(deps.db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *appServices
}

type appServices struct {
	project   projects.ProjectService
	character characters.CharacterService
	line      dialogue.LineService
	export    export.ScriptExportService
}

type appRepositories struct {
	project   projects.ProjectRepository
	character characters.CharacterRepository
	line      dialogue.LineRepository
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	services, err := initializeApplicationServices(repos, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		services: services,
	}, nil
}

// initializeRepositories sets up the gorm repositories
func initializeRepositories(db *gorm.DB, log logger.Logger) (*appRepositories, error) {
	projectRepo, err := persistence.NewGormProjectRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}

	characterRepo, err := persistence.NewGormCharacterRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create character repository: %w", err)
	}

	lineRepo, err := persistence.NewGormLineRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dialogue line repository: %w", err)
	}

	return &appRepositories{
		project:   projectRepo,
		character: characterRepo,
		line:      lineRepo,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(repos *appRepositories, log logger.Logger) (*appServices, error) {
	projectService, err := app.NewProjectService(repos.project, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}

	characterService, err := app.NewCharacterService(repos.character, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create character service: %w", err)
	}

	lineService, err := app.NewLineService(repos.line, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dialogue line service: %w", err)
	}

	writer, err := renpy.NewWriter()
	if err != nil {
		return nil, fmt.Errorf("failed to create script writer: %w", err)
	}

	exportService, err := app.NewScriptExportService(repos.project, repos.character, repos.line, writer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create export service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		project:   projectService,
		character: characterService,
		line:      lineService,
		export:    exportService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	gin.SetMode(cfg.GinMode)

	// Setup router
	r := gin.New()
	r.Use(gin.Recovery())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", v1.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", v1.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Expose /metrics
	ginprometheus.NewPrometheus("gin").Use(r)

	r.Use(v1.RequestLogger(log))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.project,
		deps.services.character,
		deps.services.line,
		deps.services.export,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
