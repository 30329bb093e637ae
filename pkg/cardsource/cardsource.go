package cardsource

import (
	"context"
	"errors"
	"fmt"

	"blackjack-server/pkg/deck"
)

// ErrSourceUnavailable is an error when the deck service cannot supply a deck or a card.
// A failed draw is fatal to the round in progress: a partial hand cannot be
// resumed against a different deck.
var ErrSourceUnavailable = errors.New("card source unavailable")

// Source supplies cards drawn without replacement from a single shuffled deck
type Source interface {
	// Draw returns the next card from the deck
	Draw(ctx context.Context) (*deck.Card, error)
}

// Provider hands out fresh, fully shuffled 52-card decks
type Provider interface {
	// NewDeck obtains a new shuffled deck
	NewDeck(ctx context.Context) (Source, error)
}

func unavailable(cause error) error {
	return fmt.Errorf("%w: %v", ErrSourceUnavailable, cause)
}
