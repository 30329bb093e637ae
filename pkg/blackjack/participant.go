package blackjack

import (
	"blackjack-server/pkg/deck"
)

// participant is the capability set common to the player and the dealer:
// a hand, a blackjack flag, and the ability to receive cards. Every
// participant owns its own hand, created fresh for each round.
type participant struct {
	hand *Hand
}

func newParticipant() participant {
	return participant{hand: NewHand()}
}

// Hand returns the participant's hand
func (p *participant) Hand() *Hand {
	return p.hand
}

// HasBlackjack returns true for a two-card 21
func (p *participant) HasBlackjack() bool {
	return p.hand.IsBlackjack()
}

// ReceiveCard adds a card to the participant's hand
func (p *participant) ReceiveCard(card *deck.Card) {
	p.hand.AddCard(card)
}

// Player is the human participant. Money lives on the round's ledger.
type Player struct {
	participant
}

// NewPlayer returns a player with an empty hand
func NewPlayer() *Player {
	return &Player{participant: newParticipant()}
}

// Dealer is the automated participant
type Dealer struct {
	participant
}

// NewDealer returns a dealer with an empty hand
func NewDealer() *Dealer {
	return &Dealer{participant: newParticipant()}
}

// Upcard returns the dealer's face-up card (the first card dealt to the dealer)
func (d *Dealer) Upcard() *deck.Card {
	return d.hand.FirstCard()
}

// OffersInsurance returns true if the dealer's face-up card is an ace
func (d *Dealer) OffersInsurance() bool {
	upcard := d.Upcard()
	return upcard != nil && CardValue(upcard) == 11
}

// MustDraw returns true while the dealer's fixed policy requires another card
func (d *Dealer) MustDraw() bool {
	return d.hand.Total() < 17
}
