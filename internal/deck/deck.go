package deck

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/arcanaland/carddeck/internal/card"
	"github.com/google/uuid"
)

// Errors returned by decks and builders. They are the card package errors,
// so errors.Is works across both packages.
var (
	ErrNilArgument     = card.ErrNilArgument
	ErrInvalidArgument = card.ErrInvalidArgument
)

// CardDeck is the set of operations every deck variant supports.
type CardDeck interface {
	// DealCard removes and returns the front card. It returns false when the
	// deck is empty.
	DealCard() (*card.Card, bool)

	// DealCards removes up to amount cards from the front. Fewer cards are
	// returned when the deck runs out. amount must be at least 1.
	DealCards(amount int) ([]*card.Card, error)

	// Fold folds a card produced by this deck.
	Fold(c *card.Card) error

	// FoldAll folds each card in order and stops at the first failure.
	FoldAll(cards []*card.Card) error

	// Shuffle randomizes the order of the remaining cards.
	Shuffle()

	// Size returns the number of cards left.
	Size() int
}

// BasicDeck is an ordered deck of cards dealt from the front. Its
// composition is fixed by the Builder that created it.
type BasicDeck struct {
	id     uuid.UUID
	cards  []*card.Card
	rng    *rand.Rand
	logger *slog.Logger
}

var _ CardDeck = (*BasicDeck)(nil)

// newBasicDeck populates the deck: seed cards first, then the ordinary
// cards accepted by predicate in suit-major order, then jokers.
func newBasicDeck(predicate Predicate, jokers int, seed []*card.Card, rng *rand.Rand, logger *slog.Logger) (*BasicDeck, error) {
	if predicate == nil {
		predicate = All
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	d := &BasicDeck{
		id:     uuid.New(),
		cards:  make([]*card.Card, 0, len(seed)+52+jokers),
		rng:    rng,
		logger: logger,
	}
	d.cards = append(d.cards, seed...)

	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			c, err := card.New(rank, suit, d)
			if err != nil {
				return nil, err
			}
			if predicate(c) {
				d.cards = append(d.cards, c)
			}
		}
	}

	for i := 0; i < jokers; i++ {
		c, err := card.New(card.Joker, card.JokerSuit, d)
		if err != nil {
			return nil, err
		}
		d.cards = append(d.cards, c)
	}

	d.logger.Debug("deck built", "deck", d.id, "size", len(d.cards), "seeded", len(seed), "jokers", jokers)
	return d, nil
}

// ID returns the identifier of the deck.
func (d *BasicDeck) ID() uuid.UUID {
	return d.id
}

func (d *BasicDeck) DealCard() (*card.Card, bool) {
	if len(d.cards) == 0 {
		return nil, false
	}
	c := d.cards[0]
	d.cards[0] = nil
	d.cards = d.cards[1:]
	return c, true
}

func (d *BasicDeck) DealCards(amount int) ([]*card.Card, error) {
	if amount < 1 {
		return nil, fmt.Errorf("%w: cards amount should be at least 1, got %d", ErrInvalidArgument, amount)
	}
	n := min(amount, len(d.cards))
	dealt := make([]*card.Card, n)
	copy(dealt, d.cards[:n])
	clear(d.cards[:n])
	d.cards = d.cards[n:]
	return dealt, nil
}

func (d *BasicDeck) Fold(c *card.Card) error {
	if c == nil {
		return fmt.Errorf("%w: card should not be nil", ErrNilArgument)
	}
	if err := c.Fold(d); err != nil {
		return err
	}
	d.logger.Debug("card folded", "deck", d.id, "card", c)
	return nil
}

func (d *BasicDeck) FoldAll(cards []*card.Card) error {
	if cards == nil {
		return fmt.Errorf("%w: cards should not be nil", ErrNilArgument)
	}
	for i, c := range cards {
		if err := d.Fold(c); err != nil {
			return fmt.Errorf("fold card %d: %w", i, err)
		}
	}
	return nil
}

// Shuffle applies a uniform random permutation to the remaining cards.
func (d *BasicDeck) Shuffle() {
	swap := func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	if d.rng != nil {
		d.rng.Shuffle(len(d.cards), swap)
	} else {
		rand.Shuffle(len(d.cards), swap)
	}
	d.logger.Debug("deck shuffled", "deck", d.id, "size", len(d.cards))
}

func (d *BasicDeck) Size() int {
	return len(d.cards)
}

// Cards iterates over the remaining cards from front to back without
// dealing them.
func (d *BasicDeck) Cards() iter.Seq[*card.Card] {
	return slices.Values(slices.Clone(d.cards))
}

func (d *BasicDeck) String() string {
	return fmt.Sprintf("BasicDeck{id=%s, size=%d, cards=%v}", d.id, len(d.cards), d.cards)
}
