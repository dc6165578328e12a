package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions are the global flags shared by every command
type rootOptions struct {
	configPath string
	verbose    bool
	output     string
}

// NewRootCmd builds the actionable command tree
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "actionable",
		Short: "Actionable - task lists and auth callbacks",
		Long: `Actionable manages a personal task list: search, filter, sort, group and
summarize tasks, resolve OAuth sign-in callbacks, and serve a JSON API.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Extra config file merged over global and project config")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "Output format: table, yaml or json")

	rootCmd.AddCommand(newTasksCmd(opts))
	rootCmd.AddCommand(newAuthCmd(opts))
	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd(version))

	return rootCmd
}

// Execute runs the root command
func Execute(version string) error {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "actionable version %s\n", version)
		},
	}
}
