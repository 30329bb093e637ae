package cardsource

import (
	"context"

	"blackjack-server/internal/rng"
	"blackjack-server/pkg/deck"
	"blackjack-server/pkg/token"

	"github.com/sirupsen/logrus"
)

// LocalProvider shuffles decks in process. It satisfies the same contract as
// the remote service and is used for offline play and tests.
type LocalProvider struct {
	logger logrus.FieldLogger
}

// NewLocalProvider returns a provider that shuffles decks in process
func NewLocalProvider(logger logrus.FieldLogger) *LocalProvider {
	return &LocalProvider{logger: logger}
}

// NewDeck returns a freshly shuffled in-process deck
func (p *LocalProvider) NewDeck(ctx context.Context) (Source, error) {
	handle, err := token.Generate(12)
	if err != nil {
		return nil, unavailable(err)
	}

	d := deck.New()
	d.Shuffle(rng.Seed())

	p.logger.WithField("deckId", handle).Debug("shuffled local deck")
	return &localSource{
		id:   handle,
		deck: d,
	}, nil
}

type localSource struct {
	id   string
	deck *deck.Deck
}

func (s *localSource) Draw(ctx context.Context) (*deck.Card, error) {
	card, err := s.deck.Draw()
	if err != nil {
		return nil, unavailable(err)
	}

	return card, nil
}
