package deck

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func Test_constants(t *testing.T) {
	assert.Equal(t, 11, Jack)
	assert.Equal(t, 12, Queen)
	assert.Equal(t, 13, King)
	assert.Equal(t, 14, Ace)
}

func TestCard_String(t *testing.T) {
	card := Card{
		Rank: 2,
		Suit: Hearts,
	}

	assert.Equal(t, "2♥", card.String())

	card = Card{
		Rank: 11,
		Suit: Clubs,
	}

	assert.Equal(t, "J♣", card.String())

	card = Card{
		Rank: 12,
		Suit: Diamonds,
	}

	assert.Equal(t, "Q♦", card.String())

	card = Card{
		Rank: 13,
		Suit: Spades,
	}

	assert.Equal(t, "K♠", card.String())

	card = Card{
		Rank: 14,
		Suit: Spades,
	}

	assert.Equal(t, "A♠", card.String())
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("5s").Equal(CardFromString("5s")))
	a.False(CardFromString("5s").Equal(CardFromString("5c")))
	a.False(CardFromString("5s").Equal(CardFromString("6s")))
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)
	cards := CardsFromString("2c,11h,14s")
	a.Equal(3, len(cards))
	a.Equal(Card{Rank: 2, Suit: Clubs}, *cards[0])
	a.Equal(Card{Rank: Jack, Suit: Hearts}, *cards[1])
	a.Equal(Card{Rank: Ace, Suit: Spades}, *cards[2])

	a.Equal("2c,11h,14s", CardsToString(cards))
	a.Equal(0, len(CardsFromString("")))

	a.Panics(func() {
		CardFromString("15c")
	})
}
