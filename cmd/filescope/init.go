package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/filescope/filescope/internal/config"
	"github.com/spf13/cobra"
)

// InitCommand represents the init command
type InitCommand struct {
	force      bool
	configPath string
}

// NewInitCommand creates a new init command
func NewInitCommand() *InitCommand {
	return &InitCommand{
		force:      false,
		configPath: ".filescope.toml",
	}
}

// CreateCobraCommand creates the cobra command for configuration initialization
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize filescope configuration file",
		Long: `Initialize a filescope configuration file in the current directory.

Creates a .filescope.toml file with commented configuration options:
• Maximum file size and the extension-to-category table
• Analyzer tuning (common-word ranking, delimiter sniffing, sampling)
• Output format and report directory

Examples:
  # Create .filescope.toml in the current directory
  filescope init

  # Create a config file with a custom name
  filescope init --config myconfig.toml

  # Overwrite an existing configuration file
  filescope init --force`,
		RunE: i.runInit,
	}

	cmd.Flags().BoolVarP(&i.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&i.configPath, "config", "c", ".filescope.toml", "Configuration file path")

	return cmd
}

// runInit executes the init command
func (i *InitCommand) runInit(cmd *cobra.Command, args []string) error {
	configPath, err := filepath.Abs(i.configPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil && !i.force {
		return fmt.Errorf("configuration file already exists: %s\nUse --force to overwrite", configPath)
	}

	content, err := config.GenerateDefaultConfig()
	if err != nil {
		return err
	}

	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write configuration file %s: %w", configPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created: %s\n", configPath)
	return nil
}

// NewInitCmd creates and returns the init cobra command
func NewInitCmd() *cobra.Command {
	return NewInitCommand().CreateCobraCommand()
}
