package card

import (
	"fmt"
	"strings"
)

// Rank represents a card rank. Ranks order by declaration.
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	// Joker sorts after every ordinary rank. It never takes part in
	// predicate filtering, so the position only matters for Compare.
	Joker
)

var rankNames = []string{
	"two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
	"jack", "queen", "king", "ace", "joker",
}

var rankShort = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "JK"}

// Ranks returns the ordinary ranks in declared order, without Joker.
func Ranks() []Rank {
	ranks := make([]Rank, 0, Ace-Two+1)
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Valid reports whether r is a declared rank.
func (r Rank) Valid() bool {
	return r >= Two && r <= Joker
}

// String returns the rank name, e.g. "Queen".
func (r Rank) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	name := rankNames[r]
	return strings.ToUpper(name[:1]) + name[1:]
}

// Short returns the index label printed in a card corner, e.g. "Q".
func (r Rank) Short() string {
	if !r.Valid() {
		return "?"
	}
	return rankShort[r]
}

// ParseRank parses a rank name ("six", "Queen") or corner label ("6", "Q").
func ParseRank(s string) (Rank, error) {
	s = strings.TrimSpace(s)
	for i, name := range rankNames {
		if strings.EqualFold(s, name) || strings.EqualFold(s, rankShort[i]) {
			return Rank(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown rank %q", ErrInvalidArgument, s)
}
