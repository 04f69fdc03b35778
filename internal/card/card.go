package card

import (
	"cmp"
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilArgument is returned when a required argument is nil.
	ErrNilArgument = errors.New("nil argument")
	// ErrInvalidArgument is returned for out-of-range or illegal values.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Deck is the view a card keeps of the deck that produced it. Cards compare
// decks by identity, so implementations must be pointer types; New rejects
// any other kind.
type Deck interface {
	Size() int
}

// IsNilDeck reports whether d is nil or a nil pointer wrapped in the interface.
func IsNilDeck(d Deck) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Card represents one playing card produced by a deck
type Card struct {
	rank   Rank
	suit   Suit
	deck   Deck // Originating deck, fixed at creation
	folded bool
}

// New creates a card owned by deck.
func New(rank Rank, suit Suit, deck Deck) (*Card, error) {
	if IsNilDeck(deck) {
		return nil, fmt.Errorf("%w: card deck cannot be nil", ErrNilArgument)
	}
	if reflect.TypeOf(deck).Kind() != reflect.Pointer {
		return nil, fmt.Errorf("%w: card deck %T must be a pointer", ErrInvalidArgument, deck)
	}
	if !rank.Valid() || !suit.Valid() {
		return nil, fmt.Errorf("%w: invalid card %d, %d", ErrInvalidArgument, rank, suit)
	}
	if (rank == Joker) != (suit == JokerSuit) {
		return nil, fmt.Errorf("%w: %s of %s is not a card", ErrInvalidArgument, rank, suit)
	}
	return &Card{rank: rank, suit: suit, deck: deck}, nil
}

func (c *Card) Rank() Rank {
	return c.rank
}

func (c *Card) Suit() Suit {
	return c.suit
}

// IsJoker reports whether the card is a joker.
func (c *Card) IsJoker() bool {
	return c.rank == Joker
}

// Deck returns the deck that created the card.
func (c *Card) Deck() Deck {
	return c.deck
}

// IsFolded reports whether the card has been folded.
func (c *Card) IsFolded() bool {
	return c.folded
}

// Fold marks the card as out of play. Folding is irreversible and folding
// an already folded card does nothing. deck must be the deck that produced
// the card.
func (c *Card) Fold(deck Deck) error {
	if IsNilDeck(deck) {
		return fmt.Errorf("%w: card deck cannot be nil", ErrNilArgument)
	}
	if c.deck != deck {
		return fmt.Errorf("%w: card %s was not produced by this deck, fold it with its owning deck",
			ErrInvalidArgument, c.label())
	}
	c.folded = true
	return nil
}

// Equal reports whether both cards have the same rank, suit and fold state.
// The originating deck is not compared.
func (c *Card) Equal(other *Card) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.rank == other.rank && c.suit == other.suit && c.folded == other.folded
}

// Compare orders cards by rank only.
func (c *Card) Compare(other *Card) int {
	return cmp.Compare(c.rank, other.rank)
}

func (c *Card) label() string {
	if c.IsJoker() {
		return c.rank.String()
	}
	return fmt.Sprintf("%s of %s", c.rank, c.suit)
}

// String returns e.g. "Queen of Hearts (Q♥) folded=false".
func (c *Card) String() string {
	return fmt.Sprintf("%s (%s%s) folded=%t", c.label(), c.rank.Short(), c.suit.Symbol(), c.folded)
}
