package cardsource

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"blackjack-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public deck of cards service
const DefaultBaseURL = "https://www.deckofcardsapi.com"

const requestTimeout = time.Second * 10

// RemoteProvider obtains decks from the deck of cards HTTP service
type RemoteProvider struct {
	baseURL string
	client  *http.Client
	logger  logrus.FieldLogger
}

// NewRemoteProvider returns a provider backed by the deck of cards service at baseURL.
// If baseURL is empty, DefaultBaseURL is used.
func NewRemoteProvider(baseURL string, logger logrus.FieldLogger) *RemoteProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &RemoteProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

type newDeckResponse struct {
	Success   bool   `json:"success"`
	DeckID    string `json:"deck_id"`
	Remaining int    `json:"remaining"`
}

type drawResponse struct {
	Success bool `json:"success"`
	Cards   []struct {
		Value string `json:"value"`
		Suit  string `json:"suit"`
	} `json:"cards"`
	Remaining int `json:"remaining"`
}

// NewDeck obtains a fresh, fully shuffled deck identifier from the remote service
func (p *RemoteProvider) NewDeck(ctx context.Context) (Source, error) {
	var payload newDeckResponse
	if err := p.get(ctx, "/api/deck/new/shuffle/?deck_count=1", &payload); err != nil {
		return nil, err
	}

	if !payload.Success || payload.DeckID == "" {
		return nil, unavailable(fmt.Errorf("service did not return a deck"))
	}

	p.logger.WithField("deckId", payload.DeckID).Debug("obtained new deck")
	return &remoteSource{
		provider: p,
		deckID:   payload.DeckID,
	}, nil
}

func (p *RemoteProvider) get(ctx context.Context, path string, payload interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return unavailable(err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return unavailable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return unavailable(fmt.Errorf("unexpected status: %s", resp.Status))
	}

	if err := json.NewDecoder(resp.Body).Decode(payload); err != nil {
		return unavailable(err)
	}

	return nil
}

// remoteSource draws cards from a single remote deck without replacement
type remoteSource struct {
	provider *RemoteProvider
	deckID   string
}

func (s *remoteSource) Draw(ctx context.Context) (*deck.Card, error) {
	var payload drawResponse
	path := fmt.Sprintf("/api/deck/%s/draw/?count=1", s.deckID)
	if err := s.provider.get(ctx, path, &payload); err != nil {
		return nil, err
	}

	if !payload.Success || len(payload.Cards) == 0 {
		return nil, unavailable(fmt.Errorf("service did not return a card"))
	}

	card, err := cardFromService(payload.Cards[0].Value, payload.Cards[0].Suit)
	if err != nil {
		return nil, unavailable(err)
	}

	return card, nil
}

func cardFromService(value, suit string) (*deck.Card, error) {
	var rank int
	switch strings.ToUpper(value) {
	case "JACK":
		rank = deck.Jack
	case "QUEEN":
		rank = deck.Queen
	case "KING":
		rank = deck.King
	case "ACE":
		rank = deck.Ace
	default:
		n, err := strconv.Atoi(value)
		if err != nil || n < 2 || n > 10 {
			return nil, fmt.Errorf("unknown card value: %s", value)
		}

		rank = n
	}

	var s deck.Suit
	switch strings.ToUpper(suit) {
	case "CLUBS":
		s = deck.Clubs
	case "DIAMONDS":
		s = deck.Diamonds
	case "HEARTS":
		s = deck.Hearts
	case "SPADES":
		s = deck.Spades
	default:
		return nil, fmt.Errorf("unknown card suit: %s", suit)
	}

	return &deck.Card{Rank: rank, Suit: s}, nil
}
