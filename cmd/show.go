package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/arcanaland/carddeck/internal/card"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// width of a rendered card face, borders included
const faceWidth = 7

var showCmd = &cobra.Command{
	Use:   "show [amount]",
	Short: "Deal cards and draw them as card faces",
	Long: `Show deals cards from a freshly built deck and draws them as card faces,
wrapped to the width of your terminal. Red suits print in red, jokers in
magenta and folded cards dimmed.

Examples:
  carddeck show 5 --shuffle
  carddeck show 13 --preset durak --jokers 1
  carddeck show 8 --fold`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parseAmount(args)
		if err != nil {
			return err
		}

		d, name, err := buildDeck(cmd)
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

		// Get terminal width
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || width <= 0 {
			width = 80 // Default if we can't get terminal width
		}

		displayCards(cmd.OutOrStdout(), cards, width)

		info := colorize.CyanString("Preset: ") + colorize.HiWhiteString(name) + "  " +
			colorize.CyanString("Left: ") + colorize.HiWhiteString("%d", d.Size())
		fmt.Fprintln(cmd.OutOrStdout(), "  "+info)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	addDeckFlags(showCmd)
	showCmd.Flags().Bool("fold", false, "Fold the dealt cards before drawing them")
}

// cardColor picks the color a card face is drawn in
func cardColor(c *card.Card) *colorize.Color {
	var col *colorize.Color
	switch {
	case c.IsJoker():
		col = colorize.New(colorize.FgHiMagenta)
	case c.Suit().IsRed():
		col = colorize.New(colorize.FgHiRed)
	default:
		col = colorize.New(colorize.FgHiWhite)
	}
	if c.IsFolded() {
		col.Add(colorize.Faint)
	}
	return col
}

// renderCard draws one card face as five lines of equal visible width
func renderCard(c *card.Card) []string {
	label := c.Rank().Short()
	symbol := c.Suit().Symbol()
	inner := faceWidth - 2

	top := label + strings.Repeat(" ", inner-utf8.RuneCountInString(label))
	bottom := strings.Repeat(" ", inner-utf8.RuneCountInString(label)) + label
	pad := (inner - utf8.RuneCountInString(symbol)) / 2
	middle := strings.Repeat(" ", pad) + symbol + strings.Repeat(" ", inner-pad-utf8.RuneCountInString(symbol))
	if c.IsFolded() {
		middle = " ╳╳╳ "
	}

	col := cardColor(c)
	return []string{
		col.Sprint("┌" + strings.Repeat("─", inner) + "┐"),
		col.Sprint("│" + top + "│"),
		col.Sprint("│" + middle + "│"),
		col.Sprint("│" + bottom + "│"),
		col.Sprint("└" + strings.Repeat("─", inner) + "┘"),
	}
}

// displayCards prints card faces in rows that fit width, followed by the
// names of the dealt cards
func displayCards(out io.Writer, cards []*card.Card, width int) {
	fmt.Fprintln(out)

	if len(cards) == 0 {
		fmt.Fprintln(out, "  "+colorize.YellowString("The deck is empty."))
		fmt.Fprintln(out)
		return
	}

	spacing := 1
	cellWidth := utf8.RuneCountInString(stripAnsi(renderCard(cards[0])[0])) + spacing
	perRow := max(1, (width-2)/cellWidth)

	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		faces := make([][]string, 0, end-start)
		for _, c := range cards[start:end] {
			faces = append(faces, renderCard(c))
		}

		for line := 0; line < len(faces[0]); line++ {
			// Print 2-character wide left padding
			fmt.Fprint(out, "  ")
			for i, face := range faces {
				if i > 0 {
					fmt.Fprint(out, strings.Repeat(" ", spacing))
				}
				fmt.Fprint(out, face[line])
			}
			fmt.Fprintln(out)
		}
	}

	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Rank().Short() + c.Suit().Symbol() + ","
		if c.IsFolded() {
			names[i] = "(" + c.Rank().Short() + c.Suit().Symbol() + "),"
		}
	}
	names[len(names)-1] = strings.TrimSuffix(names[len(names)-1], ",")

	fmt.Fprintln(out)
	for _, line := range wrapText(strings.Join(names, " "), width-4) {
		fmt.Fprintln(out, "  "+line)
	}
	fmt.Fprintln(out)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40 // Use a sensible default if width is too small
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		lineWidth := utf8.RuneCountInString(currentLine)
		wordWidth := utf8.RuneCountInString(word)
		if lineWidth == 0 {
			// First word on the line, always add it
			currentLine = word
		} else if lineWidth+1+wordWidth <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	// Add the last line if not empty
	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
