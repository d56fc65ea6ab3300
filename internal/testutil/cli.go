package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/paso-board/internal/cli"
	"github.com/thenoetrevino/paso-board/internal/database"
)

// ExecuteCLICommand runs cmd under a root carrying the global flags, with
// repo injected through the context. It returns stdout; stderr is discarded
// unless the command fails.
func ExecuteCLICommand(t *testing.T, repo *database.Repository, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	out, _, err := ExecuteCLICommandWithStderr(t, repo, cmd, args)
	return out, err
}

// ExecuteCLICommandWithStderr is ExecuteCLICommand returning stderr too
func ExecuteCLICommandWithStderr(t *testing.T, repo *database.Repository, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if repo == nil {
		t.Fatal("repo cannot be nil - SetupTestRepo must be called first")
	}

	root := &cobra.Command{Use: "paso-board"}
	cli.AddGlobalFlags(root)
	root.AddCommand(cmd)

	// Isolate from the user's config file
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	argv := append([]string{cmd.Name()}, args...)
	root.SetArgs(append(argv, "--"+cli.FlagConfig+"="+configPath))

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	root.SilenceUsage = true
	root.SilenceErrors = true

	err := root.ExecuteContext(cli.WithRepository(context.Background(), repo))
	return stdout.String(), stderr.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
