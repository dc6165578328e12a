package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/amirphiladam2/Actionable-sub001/internal/config"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage actionable configuration",
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show merged configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "# Merged configuration (defaults + global + project + env)")
			fmt.Fprint(out, string(data))
			return nil
		},
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Show configuration file paths",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Global:  %s\n", config.GlobalConfigPath())
			fmt.Fprintf(out, "Project: %s\n", config.ProjectConfigPath())
			if opts.configPath != "" {
				fmt.Fprintf(out, "Extra:   %s\n", opts.configPath)
			}
		},
	}

	var global, force bool
	configInitCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ProjectConfigPath()
			if global {
				path = config.GlobalConfigPath()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}
			if err := config.WriteDefault(path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	configInitCmd.Flags().BoolVar(&global, "global", false, "Write the global config instead of the project config")
	configInitCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	return configCmd
}
