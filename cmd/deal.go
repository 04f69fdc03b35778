package cmd

import (
	"fmt"
	"strconv"

	"github.com/arcanaland/carddeck/internal/card"
	"github.com/spf13/cobra"
)

var dealCmd = &cobra.Command{
	Use:   "deal [amount]",
	Short: "Deal cards from a freshly built deck",
	Long: `Deal builds a deck from a preset and deals cards from its front.
Dealing more cards than the deck holds deals what is left.

Examples:
  carddeck deal
  carddeck deal 5 --shuffle
  carddeck deal 10 --preset piquet --fold`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args)
		if err != nil {
			return err
		}

		d, _, err := buildDeck(cmd)
		if err != nil {
			return err
		}

		cards, err := d.DealCards(amount)
		if err != nil {
			return err
		}

		if fold, _ := cmd.Flags().GetBool("fold"); fold {
			if err := d.FoldAll(cards); err != nil {
				return fmt.Errorf("error folding cards: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		for _, c := range cards {
			fmt.Fprintln(out, c)
		}
		fmt.Fprintf(out, "%d dealt, %d left in deck %s\n", len(cards), d.Size(), d.ID())
		return nil
	},
}

// parseAmount reads the optional amount argument, defaulting to one card
func parseAmount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: amount must be a number: %s", card.ErrInvalidArgument, args[0])
	}
	return amount, nil
}

func init() {
	RootCmd.AddCommand(dealCmd)

	addDeckFlags(dealCmd)
	dealCmd.Flags().Bool("fold", false, "Fold the dealt cards")
}
