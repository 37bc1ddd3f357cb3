package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/beichenglangzi/Diagnostics/internal/config"
)

//go:embed templates/diagnostics.yaml
var configTemplate embed.FS

// configTemplateName is the path of the template inside configTemplate.
const configTemplateName = "templates/diagnostics.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new diagnostics configuration file",
		Long: `Initialize creates a new .diagnostics configuration file in the current directory.

The generated file documents every option with its default value:
- Application name and version shown in the report
- Location of the log and settings store
- Reporter order, timeout and concurrency

Examples:
  # Create .diagnostics in current directory
  diagnostics init

  # Create config file at a specific path
  diagnostics init -o myconfig.yaml

  # Force overwrite existing file
  diagnostics init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile(configTemplateName)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to configure:")
	fmt.Fprintln(out, "  - The application name shown in the report title")
	fmt.Fprintln(out, "  - Which chapters the report contains and in which order")
	fmt.Fprintln(out, "  - Where logs and settings are stored")

	return nil
}
