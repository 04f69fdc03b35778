package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/carddeck/internal/config"
	"github.com/arcanaland/carddeck/internal/deck"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Build decks and manage deck presets",
	Long:  `Commands for building decks and managing the presets in your config file.`,
}

// deckBuildCmd builds a deck and prints it
var deckBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a deck and print it",
	Long: `Build composes a deck from a preset and prints every card in it.

Examples:
  carddeck deck build
  carddeck deck build --starting-rank ace --jokers 2
  carddeck deck build --preset durak --shuffle`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, name, err := buildDeck(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Deck %s from preset %s (%d cards)\n", d.ID(), name, d.Size())
		i := 0
		for c := range d.Cards() {
			i++
			fmt.Fprintf(out, "%3d. %s\n", i, c)
		}
		return nil
	},
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the deck presets in your config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		if len(cfg.Presets) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No presets found in your config.")
			fmt.Fprintln(cmd.OutOrStdout(), "You can add presets to:", config.GetConfigFilePath())
			return nil
		}

		data := pterm.TableData{{"", "Preset", "Cards", "Composition"}}
		for _, name := range cfg.PresetNames() {
			p := cfg.Presets[name]
			if p == nil {
				p = &config.Preset{}
			}

			marker := ""
			if name == cfg.DefaultPreset {
				marker = "*"
			}

			size := "invalid"
			if d, err := p.NewDeck(nil); err == nil {
				size = strconv.Itoa(d.Size())
			} else {
				logger.Debug("preset does not build", "preset", name, "error", err)
			}

			data = append(data, []string{marker, name, size, describePreset(p)})
		}

		return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(data).Render()
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [preset]",
	Short: "Set the default preset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// Make sure the preset builds before making it the default
		p, err := config.GetPreset(name)
		if err != nil {
			return err
		}
		if _, err := p.NewDeck(nil); err != nil {
			return fmt.Errorf("preset %s is not valid: %w", name, err)
		}

		if err := config.SetDefaultPreset(name); err != nil {
			return fmt.Errorf("error setting default preset: %w", err)
		}

		pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("Default preset set to: %s", name)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file with the built-in presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		pterm.Info.WithWriter(cmd.OutOrStdout()).Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// addDeckFlags registers the flags read by buildDeck
func addDeckFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("preset", "p", "", "Preset from your config (default preset when empty)")
	cmd.Flags().StringP("starting-rank", "r", "", "Drop ordinary cards ranked below this rank")
	cmd.Flags().IntP("jokers", "j", 0, "Number of jokers to add (0-3)")
	cmd.Flags().Int("decks", 0, "Extra decks of the same composition to merge in")
	cmd.Flags().BoolP("shuffle", "s", false, "Shuffle the deck after building it")
	cmd.Flags().Uint64("seed", 0, "Seed for a reproducible shuffle")
}

// buildDeck loads the selected preset, applies flag overrides and builds
// the deck
func buildDeck(cmd *cobra.Command) (*deck.BasicDeck, string, error) {
	name, _ := cmd.Flags().GetString("preset")
	if name == "" {
		defaultPreset, err := config.GetDefaultPreset()
		if err != nil {
			return nil, "", fmt.Errorf("error getting default preset: %v", err)
		}
		name = defaultPreset
	}

	stored, err := config.GetPreset(name)
	if err != nil {
		return nil, "", err
	}
	p := *stored

	flags := cmd.Flags()
	if flags.Changed("starting-rank") {
		p.StartingRank, _ = flags.GetString("starting-rank")
	}
	if flags.Changed("jokers") {
		jokers, _ := flags.GetInt("jokers")
		p.Jokers = &jokers
	}
	if flags.Changed("decks") {
		p.Decks, _ = flags.GetInt("decks")
	}
	if flags.Changed("shuffle") {
		p.Shuffle, _ = flags.GetBool("shuffle")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		p.Seed = &seed
	}

	d, err := p.NewDeck(logger)
	if err != nil {
		return nil, "", fmt.Errorf("error building deck from preset %s: %w", name, err)
	}
	return d, name, nil
}

// describePreset summarizes a preset for the preset table
func describePreset(p *config.Preset) string {
	var parts []string
	if p.StartingRank != "" {
		parts = append(parts, "from "+p.StartingRank)
	}
	if len(p.Suits) > 0 {
		parts = append(parts, strings.Join(p.Suits, "/"))
	}
	if len(p.Ranks) > 0 {
		parts = append(parts, strings.Join(p.Ranks, "/"))
	}
	if p.Jokers != nil && *p.Jokers > 0 {
		parts = append(parts, fmt.Sprintf("%d jokers", *p.Jokers))
	}
	if p.Decks > 0 {
		parts = append(parts, fmt.Sprintf("x%d", p.Decks+1))
	}
	if p.Shuffle {
		parts = append(parts, "shuffled")
	}
	if len(parts) == 0 {
		return "full deck"
	}
	return strings.Join(parts, ", ")
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckBuildCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)

	addDeckFlags(deckBuildCmd)
}
