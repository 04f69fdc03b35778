package deck

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/arcanaland/carddeck/internal/card"
)

const (
	MinJokers = 0
	MaxJokers = 3
)

// Builder configures the composition of a BasicDeck.
//
// The first failing option is recorded and every later option is skipped,
// so a chain can be written without checking each step:
//
//	d, err := deck.NewBuilder().WithStartingRank(card.Six).WithJokers(2).Build()
//
// WithCardPredicate and WithStartingRank share one filter; the last call wins.
type Builder struct {
	predicate Predicate
	jokers    int
	seed      []*card.Card
	rng       *rand.Rand
	logger    *slog.Logger
	err       error
}

// NewBuilder returns a builder for a standard 52 card deck without jokers.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithCardPredicate keeps only the ordinary cards accepted by predicate.
// Jokers are never filtered; use WithJokers for them.
func (b *Builder) WithCardPredicate(predicate Predicate) *Builder {
	if b.err != nil {
		return b
	}
	if predicate == nil {
		b.err = fmt.Errorf("%w: provided card predicate cannot be nil", ErrNilArgument)
		return b
	}
	b.predicate = predicate
	return b
}

// WithStartingRank drops every ordinary card ranked below rank.
func (b *Builder) WithStartingRank(rank card.Rank) *Builder {
	if b.err != nil {
		return b
	}
	if !rank.Valid() {
		b.err = fmt.Errorf("%w: provided rank %d is not declared", ErrInvalidArgument, rank)
		return b
	}
	b.predicate = StartingAt(rank)
	return b
}

// WithJokers adds count jokers (0-3) to the deck.
func (b *Builder) WithJokers(count int) *Builder {
	if b.err != nil {
		return b
	}
	if count < MinJokers || count > MaxJokers {
		b.err = fmt.Errorf("%w: invalid amount of jokers %d, expected %d-%d",
			ErrInvalidArgument, count, MinJokers, MaxJokers)
		return b
	}
	b.jokers = count
	return b
}

// WithCardDeck deals every remaining card out of other and places them at
// the front of the deck being built. other is left empty. The merged cards
// still belong to other for folding.
func (b *Builder) WithCardDeck(other CardDeck) *Builder {
	if b.err != nil {
		return b
	}
	if card.IsNilDeck(other) {
		b.err = fmt.Errorf("%w: cannot add nil card deck", ErrNilArgument)
		return b
	}
	if other.Size() == 0 {
		b.err = fmt.Errorf("%w: cannot use empty card deck", ErrInvalidArgument)
		return b
	}
	for other.Size() > 0 {
		cards, err := other.DealCards(other.Size())
		if err != nil {
			b.err = err
			return b
		}
		b.seed = append(b.seed, cards...)
	}
	return b
}

// WithRand sets the random source used by Shuffle. Without it the deck
// uses the process-wide source.
func (b *Builder) WithRand(rng *rand.Rand) *Builder {
	if b.err != nil {
		return b
	}
	if rng == nil {
		b.err = fmt.Errorf("%w: random source cannot be nil", ErrNilArgument)
		return b
	}
	b.rng = rng
	return b
}

// WithLogger sets the logger that receives debug records for the deck.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if b.err != nil {
		return b
	}
	if logger == nil {
		b.err = fmt.Errorf("%w: logger cannot be nil", ErrNilArgument)
		return b
	}
	b.logger = logger
	return b
}

// Err returns the first error recorded by an option.
func (b *Builder) Err() error {
	return b.err
}

// Build creates the deck. Seed cards taken with WithCardDeck move into the
// new deck, so a second Build only generates fresh cards.
func (b *Builder) Build() (*BasicDeck, error) {
	if b.err != nil {
		return nil, b.err
	}
	seed := b.seed
	b.seed = nil
	return newBasicDeck(b.predicate, b.jokers, seed, b.rng, b.logger)
}
