// Package main is the entry point for the renpy-editor-cli application.
// It registers the database and remote sub-commands and executes the command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/renpy-visual-editor/cmd/renpy-editor-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "renpy-editor-cli",
		Short: "Ren'Py Visual Editor command-line tool",
		Long: `renpy-editor-cli manages the editor database and talks to a running editor API.

Database commands read the same configuration as the REST API:
- CONFIG_PATH (defaults to configs/rest-app.yaml)
- DATABASE_URL overrides the configured database`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitDatabaseCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize database commands: %w", err)
	}

	if err := commands.InitRemoteCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize remote commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
