package deck

import (
	"slices"

	"github.com/arcanaland/carddeck/internal/card"
)

// Predicate decides whether an ordinary card is part of a deck.
type Predicate func(c *card.Card) bool

// All accepts every card.
func All(*card.Card) bool {
	return true
}

// StartingAt accepts cards ranked rank or higher.
func StartingAt(rank card.Rank) Predicate {
	return func(c *card.Card) bool {
		return c.Rank() >= rank
	}
}

// SuitIn accepts cards of the given suits.
func SuitIn(suits ...card.Suit) Predicate {
	return func(c *card.Card) bool {
		return slices.Contains(suits, c.Suit())
	}
}

// RankIn accepts cards of the given ranks.
func RankIn(ranks ...card.Rank) Predicate {
	return func(c *card.Card) bool {
		return slices.Contains(ranks, c.Rank())
	}
}

// And accepts cards accepted by p and every other predicate.
func (p Predicate) And(others ...Predicate) Predicate {
	return func(c *card.Card) bool {
		if !p(c) {
			return false
		}
		for _, o := range others {
			if !o(c) {
				return false
			}
		}
		return true
	}
}
