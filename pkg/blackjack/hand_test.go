package blackjack

import (
	"testing"

	"blackjack-server/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func handFromString(s string) *Hand {
	h := NewHand()
	for _, card := range deck.CardsFromString(s) {
		h.AddCard(card)
	}

	return h
}

func TestCardValue(t *testing.T) {
	a := assert.New(t)
	a.Equal(2, CardValue(deck.CardFromString("2c")))
	a.Equal(10, CardValue(deck.CardFromString("10c")))
	a.Equal(10, CardValue(deck.CardFromString("11c")))
	a.Equal(10, CardValue(deck.CardFromString("12c")))
	a.Equal(10, CardValue(deck.CardFromString("13c")))
	a.Equal(11, CardValue(deck.CardFromString("14c")))
}

func TestHand_Total(t *testing.T) {
	test := func(cards string, total int) {
		t.Helper()
		assert.Equal(t, total, handFromString(cards).Total(), "cards: %s", cards)
	}

	test("", 0)
	test("2c,3d", 5)
	test("10s,9h", 19)
	test("11s,12h", 20)

	// soft hands
	test("14s", 11)
	test("14s,6h", 17)
	test("14s,14h", 12)

	// demotion one ace at a time while over 21
	test("14s,9h,5c", 15)
	test("14s,14h,9c", 21)
	test("14s,14h,14c,8d", 21)

	// the minimum total stands even when all-aces-as-1 exceeds 21
	test("14s,14h,14c,14d,13s", 14)
	test("10s,9h,8c", 27)
}

func TestHand_IsBlackjack(t *testing.T) {
	a := assert.New(t)

	a.True(handFromString("14s,13h").IsBlackjack())
	a.True(handFromString("10d,14c").IsBlackjack())

	// 21 with three cards is not a blackjack
	a.False(handFromString("7s,7h,7d").IsBlackjack())
	a.False(handFromString("14s,5h,5d").IsBlackjack())
	a.False(handFromString("14s,9h").IsBlackjack())
	a.False(handFromString("14s").IsBlackjack())
}

func TestHand_IsBust(t *testing.T) {
	a := assert.New(t)
	a.False(handFromString("10s,9h,2c").IsBust())
	a.True(handFromString("10s,9h,3c").IsBust())
	a.False(handFromString("14s,14h,14c,14d,13s").IsBust())
}

func TestHand_IsSoft(t *testing.T) {
	a := assert.New(t)
	a.True(handFromString("14s,6h").IsSoft())
	a.False(handFromString("14s,6h,9c").IsSoft())
	a.False(handFromString("10s,7h").IsSoft())
	a.False(handFromString("").IsSoft())
}

func TestHand_order(t *testing.T) {
	a := assert.New(t)

	h := NewHand()
	h.AddCard(deck.CardFromString("9h"))
	h.AddCard(deck.CardFromString("2c"))
	h.AddCard(deck.CardFromString("14s"))

	// deal order is preserved for display
	a.Equal("9h,2c,14s", h.String())
	a.Equal(3, h.Count())
	a.Equal("9h", deck.CardToString(h.FirstCard()))

	// scoring is order-independent
	a.Equal(handFromString("14s,2c,9h").Total(), h.Total())
}
