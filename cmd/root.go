package cmd

import (
	"log/slog"

	"github.com/arcanaland/carddeck/internal/config"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "carddeck",
	Short: "Build, shuffle and deal decks of playing cards",
	Long: `Carddeck is a command-line tool for building decks of playing cards.
Decks are composed from presets (starting rank, suit and rank filters, jokers,
merged decks) kept in your config file, then shuffled, dealt and folded.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			pterm.DefaultLogger.Level = pterm.LogLevelDebug
		}
		return config.LoadEnv()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log deck operations")
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
