// Package cli provides the command-line interface for tabwell.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabwell-labs/tabwell/internal/cli/commands"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabwell",
		Short: "tabwell - CSV cleaning pipeline",
		Long: `tabwell cleans delimited tabular data in one pass: it loads a CSV
file, handles missing values (drop, fill, or impute), removes duplicate
rows, sorts by a chosen column, and writes the result to a new file.

The stage order is fixed: missing-value handling, then deduplication,
then sorting.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
CSV cleaning pipeline
`)

	// Global persistent flags
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./tabwell.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringP("format", "f", "", "Output format (auto|text|markdown|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "text", "markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(commands.NewVersionCommand(Version))
	rootCmd.AddCommand(commands.NewCleanCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewSampleCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
