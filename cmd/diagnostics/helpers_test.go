package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// executeCommand runs the root command with args against a private data
// directory and returns what it printed to stdout.
func executeCommand(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--data-dir", dataDir}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

// writeConfig writes a config file with content and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "diagnostics.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}
