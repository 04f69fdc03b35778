package config

import (
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/arcanaland/carddeck/internal/card"
	"github.com/arcanaland/carddeck/internal/deck"
)

// MaxExtraDecks bounds Preset.Decks; eight decks make a casino shoe.
const MaxExtraDecks = 7

// Preset describes the composition of a deck
type Preset struct {
	StartingRank string   `toml:"starting_rank,omitempty"` // e.g. "six"
	Suits        []string `toml:"suits,omitempty"`         // keep only these suits
	Ranks        []string `toml:"ranks,omitempty"`         // keep only these ranks
	Jokers       *int     `toml:"jokers,omitempty"`        // 0-3
	Decks        int      `toml:"decks,omitempty"`         // extra decks of the same composition merged in
	Shuffle      bool     `toml:"shuffle,omitempty"`
	Seed         *uint64  `toml:"seed,omitempty"` // fixed shuffle seed
}

// Predicate returns the card filter described by Suits and Ranks, or nil
// when neither is set.
func (p *Preset) Predicate() (deck.Predicate, error) {
	if len(p.Suits) == 0 && len(p.Ranks) == 0 {
		return nil, nil
	}

	predicate := deck.Predicate(deck.All)
	if len(p.Suits) > 0 {
		suits := make([]card.Suit, 0, len(p.Suits))
		for _, name := range p.Suits {
			s, err := card.ParseSuit(name)
			if err != nil {
				return nil, err
			}
			if s == card.JokerSuit {
				return nil, fmt.Errorf("%w: jokers are set with the jokers key", card.ErrInvalidArgument)
			}
			suits = append(suits, s)
		}
		predicate = predicate.And(deck.SuitIn(suits...))
	}
	if len(p.Ranks) > 0 {
		ranks := make([]card.Rank, 0, len(p.Ranks))
		for _, name := range p.Ranks {
			r, err := card.ParseRank(name)
			if err != nil {
				return nil, err
			}
			if r == card.Joker {
				return nil, fmt.Errorf("%w: jokers are set with the jokers key", card.ErrInvalidArgument)
			}
			ranks = append(ranks, r)
		}
		predicate = predicate.And(deck.RankIn(ranks...))
	}
	return predicate, nil
}

// Builder returns a deck builder configured with the preset composition.
// Merged decks are not included; see NewDeck.
func (p *Preset) Builder() (*deck.Builder, error) {
	b := deck.NewBuilder()

	predicate, err := p.Predicate()
	if err != nil {
		return nil, err
	}
	if predicate != nil {
		b.WithCardPredicate(predicate)
	}

	// starting_rank is applied after suits/ranks and replaces them
	if p.StartingRank != "" {
		r, err := card.ParseRank(p.StartingRank)
		if err != nil {
			return nil, err
		}
		b.WithStartingRank(r)
	}

	if p.Jokers != nil {
		b.WithJokers(*p.Jokers)
	}

	return b, b.Err()
}

// NewDeck builds a deck from the preset, merging in Decks extra decks of
// the same composition and shuffling when Shuffle is set.
func (p *Preset) NewDeck(logger *slog.Logger) (*deck.BasicDeck, error) {
	if p.Decks < 0 || p.Decks > MaxExtraDecks {
		return nil, fmt.Errorf("%w: decks %d is outside 0-%d", card.ErrInvalidArgument, p.Decks, MaxExtraDecks)
	}

	b, err := p.Builder()
	if err != nil {
		return nil, err
	}
	if logger != nil {
		b.WithLogger(logger)
	}
	if p.Seed != nil {
		b.WithRand(rand.New(rand.NewPCG(*p.Seed, *p.Seed)))
	}

	for i := 0; i < p.Decks; i++ {
		eb, err := p.Builder()
		if err != nil {
			return nil, err
		}
		extra, err := eb.Build()
		if err != nil {
			return nil, err
		}
		b.WithCardDeck(extra)
	}

	d, err := b.Build()
	if err != nil {
		return nil, err
	}
	if p.Shuffle {
		d.Shuffle()
	}
	return d, nil
}
