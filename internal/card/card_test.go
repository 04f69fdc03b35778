package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDeck struct{ cards int }

func (d *stubDeck) Size() int { return d.cards }

// valueDeck is not comparable, so it can only be used by value
type valueDeck struct{ cards []int }

func (d valueDeck) Size() int { return len(d.cards) }

func mustCard(t *testing.T, r Rank, s Suit, d Deck) *Card {
	t.Helper()
	c, err := New(r, s, d)
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	d := &stubDeck{}

	tests := []struct {
		name    string
		rank    Rank
		suit    Suit
		deck    Deck
		wantErr error
	}{
		{"ordinary card", Queen, Hearts, d, nil},
		{"joker", Joker, JokerSuit, d, nil},
		{"nil deck", Ace, Spades, nil, ErrNilArgument},
		{"nil deck pointer", Ace, Spades, (*stubDeck)(nil), ErrNilArgument},
		{"value deck", Ace, Spades, valueDeck{}, ErrInvalidArgument},
		{"joker rank in ordinary suit", Joker, Clubs, d, ErrInvalidArgument},
		{"ordinary rank in joker suit", Ten, JokerSuit, d, ErrInvalidArgument},
		{"undeclared rank", Rank(42), Clubs, d, ErrInvalidArgument},
		{"undeclared suit", Two, Suit(-1), d, ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.rank, tt.suit, tt.deck)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rank, c.Rank())
			assert.Equal(t, tt.suit, c.Suit())
			assert.Same(t, tt.deck, c.Deck())
			assert.False(t, c.IsFolded())
		})
	}
}

func TestFold(t *testing.T) {
	owner := &stubDeck{}
	c := mustCard(t, Ace, Hearts, owner)

	require.NoError(t, c.Fold(owner))
	assert.True(t, c.IsFolded())

	// folding twice is a no-op
	require.NoError(t, c.Fold(owner))
	assert.True(t, c.IsFolded())
}

func TestFoldRejectsForeignDeck(t *testing.T) {
	owner := &stubDeck{}
	c := mustCard(t, Ace, Hearts, owner)

	err := c.Fold(&stubDeck{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.False(t, c.IsFolded())

	err = c.Fold(nil)
	assert.ErrorIs(t, err, ErrNilArgument)
	assert.False(t, c.IsFolded())

	var missing *stubDeck
	err = c.Fold(missing)
	assert.ErrorIs(t, err, ErrNilArgument)
	assert.False(t, c.IsFolded())

	// a non-comparable deck value is a foreign deck, not a panic
	err = c.Fold(valueDeck{cards: []int{1}})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.False(t, c.IsFolded())
}

func TestIsNilDeck(t *testing.T) {
	var missing *stubDeck
	assert.True(t, IsNilDeck(nil))
	assert.True(t, IsNilDeck(missing))
	assert.False(t, IsNilDeck(&stubDeck{}))
	assert.False(t, IsNilDeck(valueDeck{}))
}

func TestEqualAndCompare(t *testing.T) {
	a, b := &stubDeck{}, &stubDeck{}
	x := mustCard(t, King, Spades, a)
	y := mustCard(t, King, Spades, b)

	assert.True(t, x.Equal(y), "decks are not part of equality")
	require.NoError(t, x.Fold(a))
	assert.False(t, x.Equal(y), "fold state is part of equality")

	low := mustCard(t, Two, Hearts, a)
	high := mustCard(t, Ace, Diamonds, a)
	joker := mustCard(t, Joker, JokerSuit, a)
	assert.Negative(t, low.Compare(high))
	assert.Positive(t, high.Compare(low))
	assert.Zero(t, x.Compare(y))
	assert.Positive(t, joker.Compare(high))
}

func TestCardString(t *testing.T) {
	d := &stubDeck{}
	tests := []struct {
		card *Card
		want string
	}{
		{mustCard(t, Queen, Hearts, d), "Queen of Hearts (Q♥) folded=false"},
		{mustCard(t, Ten, Clubs, d), "Ten of Clubs (10♧) folded=false"},
		{mustCard(t, Joker, JokerSuit, d), "Joker (JK*) folded=false"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.String())
		})
	}

	c := mustCard(t, Two, Diamonds, d)
	require.NoError(t, c.Fold(d))
	assert.Equal(t, "Two of Diamonds (2♢) folded=true", c.String())
}

func TestParseRankAndSuit(t *testing.T) {
	r, err := ParseRank("six")
	require.NoError(t, err)
	assert.Equal(t, Six, r)

	r, err = ParseRank("Q")
	require.NoError(t, err)
	assert.Equal(t, Queen, r)

	_, err = ParseRank("knight")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	s, err := ParseSuit("Spades")
	require.NoError(t, err)
	assert.Equal(t, Spades, s)

	s, err = ParseSuit("♥")
	require.NoError(t, err)
	assert.Equal(t, Hearts, s)

	_, err = ParseSuit("wands")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeclaredOrder(t *testing.T) {
	ranks := Ranks()
	assert.Len(t, ranks, 13)
	assert.Equal(t, Two, ranks[0])
	assert.Equal(t, Ace, ranks[12])
	assert.NotContains(t, ranks, Joker)

	assert.Equal(t, []Suit{Diamonds, Clubs, Hearts, Spades}, Suits())
	assert.True(t, Hearts.IsRed())
	assert.False(t, Spades.IsRed())
}
