//go:build unit
// +build unit

package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	v1 "github.com/MGTheTrain/renpy-visual-editor/internal/api/rest/v1"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/projects/", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]v1.ProjectResponse{{ID: "p1", Name: "Demo"}})
	})
	mux.HandleFunc("/api/characters/p1", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]v1.CharacterResponse{{ID: "c1", ProjectID: "p1", Name: "Alice"}})
	})
	mux.HandleFunc("/api/export/p1", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(v1.ExportResponse{ProjectID: "p1", Filename: "script.rpy", Script: "label start:\n    return\n"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func executeRemote(t *testing.T, args ...string) string {
	t.Helper()

	rootCmd := &cobra.Command{Use: "renpy-editor-cli"}
	require.NoError(t, InitRemoteCommands(rootCmd))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())

	return out.String()
}

func TestRemoteProjectsCmd(t *testing.T) {
	server := newFakeAPI(t)

	out := executeRemote(t, "remote", "projects", "--server", server.URL)

	var res []v1.ProjectResponse
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res, 1)
	assert.Equal(t, "Demo", res[0].Name)
}

func TestRemoteCharactersCmd(t *testing.T) {
	server := newFakeAPI(t)

	out := executeRemote(t, "remote", "characters", "--server", server.URL, "--project-id", "p1")

	assert.Contains(t, out, `"name": "Alice"`)
}

func TestRemoteExportCmd(t *testing.T) {
	server := newFakeAPI(t)

	t.Run("stdout", func(t *testing.T) {
		out := executeRemote(t, "remote", "export", "--server", server.URL, "-p", "p1")
		assert.Equal(t, "label start:\n    return\n", out)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "game", "script.rpy")

		out := executeRemote(t, "remote", "export", "--server", server.URL, "-p", "p1", "-o", path)
		assert.Empty(t, out)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "label start:\n    return\n", string(content))
	})
}

func TestRemoteCharactersCmd_RequiresProjectID(t *testing.T) {
	rootCmd := &cobra.Command{Use: "renpy-editor-cli"}
	require.NoError(t, InitRemoteCommands(rootCmd))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"remote", "characters"})
	assert.Error(t, rootCmd.Execute())
}
