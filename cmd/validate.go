package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/carddeck/internal/config"
	"github.com/arcanaland/carddeck/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a presets file",
	Long: `Validate checks that a TOML file of deck presets is well formed and that
every preset builds a deck. Without a path it validates your config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.GetConfigFilePath()
		if len(args) == 1 {
			path = args[0]
		}

		// Check if path exists
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("presets file not found: %s", path)
		}

		// Create validator and run validation
		v := validator.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		out := cmd.OutOrStdout()

		// Display validation results
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ '%s' is valid.\n", path)
		} else {
			fmt.Fprintf(out, "❌ '%s' has %d validation errors:\n", path, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}
