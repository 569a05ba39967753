package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/apiclient"
	"github.com/MGTheTrain/renpy-visual-editor/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const defaultServerURL = "http://localhost:8000"

// RemoteCommandHandler talks to a running editor API.
type RemoteCommandHandler struct {
	logger logger.Logger
}

// NewRemoteCommandHandler initializes a RemoteCommandHandler
func NewRemoteCommandHandler() (*RemoteCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &RemoteCommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *RemoteCommandHandler) client(cmd *cobra.Command) (*apiclient.Client, error) {
	server, err := cmd.Flags().GetString("server")
	if err != nil {
		return nil, fmt.Errorf("invalid server flag: %w", err)
	}
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, fmt.Errorf("invalid timeout flag: %w", err)
	}
	return apiclient.New(server, timeout), nil
}

func (commandHandler *RemoteCommandHandler) printJSON(cmd *cobra.Command, v any) {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		commandHandler.logger.Error("failed to encode response: ", err)
	}
}

// HealthCmd checks that the server is up
func (commandHandler *RemoteCommandHandler) HealthCmd(cmd *cobra.Command, _ []string) {
	client, err := commandHandler.client(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	health, err := client.Health(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.printJSON(cmd, health)
}

// ProjectsCmd lists the projects of the server
func (commandHandler *RemoteCommandHandler) ProjectsCmd(cmd *cobra.Command, _ []string) {
	client, err := commandHandler.client(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	projects, err := client.ListProjects(cmd.Context())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.printJSON(cmd, projects)
}

// CharactersCmd lists the characters of a project
func (commandHandler *RemoteCommandHandler) CharactersCmd(cmd *cobra.Command, _ []string) {
	projectID, err := cmd.Flags().GetString("project-id")
	if err != nil {
		commandHandler.logger.Error("invalid project-id flag ", err)
		return
	}

	client, err := commandHandler.client(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	characters, err := client.ListCharacters(cmd.Context(), projectID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	commandHandler.printJSON(cmd, characters)
}

// ExportCmd downloads the generated script of a project
func (commandHandler *RemoteCommandHandler) ExportCmd(cmd *cobra.Command, _ []string) {
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

	client, err := commandHandler.client(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	script, err := client.Export(cmd.Context(), projectID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := writeOutput(cmd.OutOrStdout(), output, script.Script); err != nil {
		commandHandler.logger.Error(err)
	}
}

// InitRemoteCommands registers the remote command group
func InitRemoteCommands(rootCmd *cobra.Command) error {
	handler, err := NewRemoteCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create remote command handler: %w", err)
	}

	remoteCmd := &cobra.Command{
		Use:   "remote",
		Short: "Call a running editor API",
	}
	remoteCmd.PersistentFlags().StringP("server", "s", defaultServerURL, "Base URL of the editor API")
	remoteCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Timeout of a single request")

	remoteCmd.AddCommand(&cobra.Command{
		Use:   "health",
		Short: "Check the liveness probe",
		Run:   handler.HealthCmd,
	})

	remoteCmd.AddCommand(&cobra.Command{
		Use:   "projects",
		Short: "List projects",
		Run:   handler.ProjectsCmd,
	})

	charactersCmd := &cobra.Command{
		Use:   "characters",
		Short: "List the characters of a project",
		Run:   handler.CharactersCmd,
	}
	charactersCmd.Flags().StringP("project-id", "p", "", "ID of the project")
	_ = charactersCmd.MarkFlagRequired("project-id")
	remoteCmd.AddCommand(charactersCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a project as a Ren'Py script through the API",
		Run:   handler.ExportCmd,
	}
	exportCmd.Flags().StringP("project-id", "p", "", "ID of the project to export")
	exportCmd.Flags().StringP("output", "o", "", "Path of the script file (stdout when empty)")
	_ = exportCmd.MarkFlagRequired("project-id")
	remoteCmd.AddCommand(exportCmd)

	rootCmd.AddCommand(remoteCmd)
	return nil
}
