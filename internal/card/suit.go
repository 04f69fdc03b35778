package card

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Diamonds Suit = iota
	Clubs
	Hearts
	Spades
	// JokerSuit is carried only by jokers.
	JokerSuit
)

var suitNames = []string{"diamonds", "clubs", "hearts", "spades", "joker"}

var suitSymbols = []string{"♢", "♧", "♥", "♤", "*"}

// Suits returns the four ordinary suits in declared order.
func Suits() []Suit {
	return []Suit{Diamonds, Clubs, Hearts, Spades}
}

// Valid reports whether s is a declared suit.
func (s Suit) Valid() bool {
	return s >= Diamonds && s <= JokerSuit
}

func (s Suit) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	name := suitNames[s]
	return strings.ToUpper(name[:1]) + name[1:]
}

// Symbol returns the display symbol of the suit.
func (s Suit) Symbol() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// IsRed reports whether the suit prints in red.
func (s Suit) IsRed() bool {
	return s == Diamonds || s == Hearts
}

// ParseSuit parses a suit name ("hearts", "Spades") or its symbol.
func ParseSuit(s string) (Suit, error) {
	s = strings.TrimSpace(s)
	for i, name := range suitNames {
		if strings.EqualFold(s, name) || s == suitSymbols[i] {
			return Suit(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown suit %q", ErrInvalidArgument, s)
}
