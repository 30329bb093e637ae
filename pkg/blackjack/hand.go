package blackjack

import (
	"blackjack-server/pkg/deck"
)

// blackjack is a two-card 21
const blackjackTotal = 21

// Hand is an ordered collection of cards with blackjack scoring.
// Order is deal order and matters only for display; scoring is
// order-independent.
type Hand struct {
	cards []*deck.Card
}

// NewHand returns an empty hand
func NewHand() *Hand {
	return &Hand{
		cards: make([]*deck.Card, 0, 8),
	}
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card *deck.Card) {
	h.cards = append(h.cards, card)
}

// Cards returns the cards in deal order
func (h *Hand) Cards() []*deck.Card {
	return h.cards
}

// Count returns the number of cards in the hand
func (h *Hand) Count() int {
	return len(h.cards)
}

// FirstCard returns the first card dealt, or nil for an empty hand
func (h *Hand) FirstCard() *deck.Card {
	if len(h.cards) == 0 {
		return nil
	}

	return h.cards[0]
}

// Total returns the best legal blackjack total for the hand.
// Every ace starts at 11 and aces are demoted to 1 one at a time while the
// total is over 21. If all aces are demoted the minimum total stands, even
// when it exceeds 21.
func (h *Hand) Total() int {
	total, aces := 0, 0
	for _, card := range h.cards {
		value := CardValue(card)
		if card.Rank == deck.Ace {
			aces++
		}

		total += value
	}

	for total > blackjackTotal && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsBlackjack returns true for a two-card 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Total() == blackjackTotal
}

// IsBust returns true if the total exceeds 21
func (h *Hand) IsBust() bool {
	return h.Total() > blackjackTotal
}

// IsSoft returns true if the hand counts an ace as 11
func (h *Hand) IsSoft() bool {
	hard, aces := 0, 0
	for _, card := range h.cards {
		if card.Rank == deck.Ace {
			aces++
			hard++
		} else {
			hard += CardValue(card)
		}
	}

	return aces > 0 && hard+10 <= blackjackTotal
}

func (h *Hand) String() string {
	return deck.CardsToString(h.cards)
}

// CardValue returns the fixed blackjack value of a card: numeric ranks map to
// their face value, jack/queen/king to 10, and an ace to 11 (demotion to 1 is
// the hand's responsibility).
func CardValue(card *deck.Card) int {
	switch {
	case card.Rank == deck.Ace:
		return 11
	case card.Rank >= deck.Jack:
		return 10
	default:
		return card.Rank
	}
}
