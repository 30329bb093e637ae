package cardsource

import (
	"context"
	"errors"

	"blackjack-server/pkg/deck"
)

// Scripted is a Source that deals a predetermined sequence of cards.
// It exists so round behavior can be driven deterministically in tests.
type Scripted struct {
	cards []*deck.Card
	fail  bool
}

// NewScripted returns a source that deals the cards in order.
// The cards string is in the CardsFromString format (e.g., "10s,9h,7d").
func NewScripted(cards string) *Scripted {
	return &Scripted{cards: deck.CardsFromString(cards)}
}

// FailAfterScript will make the source return ErrSourceUnavailable once
// the scripted cards run out, instead of panicking.
func (s *Scripted) FailAfterScript() *Scripted {
	s.fail = true
	return s
}

// Draw deals the next scripted card
func (s *Scripted) Draw(ctx context.Context) (*deck.Card, error) {
	if len(s.cards) == 0 {
		if s.fail {
			return nil, unavailable(errors.New("script exhausted"))
		}

		panic("scripted source ran out of cards")
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// Remaining returns the number of scripted cards left
func (s *Scripted) Remaining() int {
	return len(s.cards)
}
