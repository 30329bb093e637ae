package room

import (
	"context"
	"errors"
	"sync"

	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/cardsource"
	"blackjack-server/pkg/currency"
	"blackjack-server/pkg/model"

	"github.com/sirupsen/logrus"
)

type state int

const (
	stateClientEvent state = iota
	stateGameEvent
)

// Host runs a single blackjack table. The table owner plays; anyone else at
// the table watches. All game mutations happen on the host's run loop, and
// the table record's balance is written back after every settled round.
type Host struct {
	pitBoss *PitBoss
	record  *model.Table
	game    *blackjack.Table
	clients map[*Client]bool
	lock    sync.RWMutex
	logger  logrus.FieldLogger

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool

	// persist writes the settled wallet back to storage
	persist func(ctx context.Context, balance int) error
}

// NewHost creates a new host for the table
// This is called from a blocking state, so it needs to return quickly
func NewHost(pitBoss *PitBoss, record *model.Table) *Host {
	logger := logrus.WithFields(logrus.Fields{
		"uuid": record.UUID,
		"name": record.Name,
	})

	game := blackjack.NewTable(logger, pitBoss.provider, blackjack.Options{
		StartingWallet: currency.Cents(record.Balance),
		MinimumBet:     currency.Cents(record.MinimumBet),
	})

	return &Host{
		pitBoss:       pitBoss,
		record:        record,
		game:          game,
		clients:       make(map[*Client]bool),
		logger:        logger,
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
		persist:       record.SetBalance,
	}
}

// Clients will return a slice of connected (at the time) clients
func (h *Host) Clients() []*Client {
	h.lock.RLock()
	defer h.lock.RUnlock()

	clients := make([]*Client, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (h *Host) StartShift() {
	go h.runLoop()
}

func (h *Host) runLoop() {
	h.logger.Debug("creating host run loop")
	for {
		select {
		case s := <-h.stateChanged:
			switch s {
			case stateClientEvent:
				h.sendClientState()
			case stateGameEvent:
				h.sendGameState()
			}
		case fn := <-h.execInRunLoop:
			fn()
		case <-h.close:
			h.logger.Debug("terminating host run loop")
			return
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (h *Host) AddClient(client *Client) {
	h.lock.Lock()
	client.host = h
	h.clients[client] = true
	h.lock.Unlock()

	h.stateChanged <- stateClientEvent
	h.execInRunLoop <- func() {
		client.Send(&Response{
			Key:  "gameState",
			Data: h.gameState(),
		})
	}
}

// RemoveClient removes a client
// This method must return quickly
func (h *Host) RemoveClient(client *Client) (lastClient bool) {
	h.lock.Lock()
	delete(h.clients, client)
	nClients := len(h.clients)
	h.lock.Unlock()

	if nClients > 0 {
		h.stateChanged <- stateClientEvent
		return false
	}

	return true
}

// EndShift is called when the host is no longer needed
func (h *Host) EndShift() {
	close(h.close)
}

// gameState is the wire form of the table for connected clients
type gameState struct {
	State            blackjack.RoundState `json:"state,omitempty"`
	Player           *blackjack.HandView  `json:"player,omitempty"`
	Dealer           *blackjack.HandView  `json:"dealer,omitempty"`
	Wallet           currency.Cents       `json:"wallet"`
	Bet              currency.Cents       `json:"bet"`
	MinimumBet       currency.Cents       `json:"minimumBet"`
	ValidActions     []blackjack.Action   `json:"validActions,omitempty"`
	InsuranceOffered bool                 `json:"insuranceOffered,omitempty"`
	MaxInsurance     currency.Cents       `json:"maxInsurance,omitempty"`
	Result           *blackjack.Result    `json:"result,omitempty"`
}

// NOTE: must only be called from the run loop
func (h *Host) gameState() *gameState {
	ledger := h.game.Ledger()
	gs := &gameState{
		Wallet:     ledger.Wallet(),
		Bet:        ledger.Bet(),
		MinimumBet: ledger.MinimumBet(),
	}

	round := h.game.Round()
	if round == nil {
		return gs
	}

	playerView := round.PlayerView()
	dealerView := round.DealerView()
	gs.State = round.State()
	gs.Player = &playerView
	gs.Dealer = &dealerView
	gs.ValidActions = round.ValidActions()
	gs.Result = round.Result()

	if round.InsuranceOffered() {
		gs.InsuranceOffered = true
		gs.MaxInsurance = round.MaxInsurance()
	}

	return gs
}

// NOTE: must only be called from the run loop
func (h *Host) sendGameState() {
	data := h.gameState()
	for _, client := range h.Clients() {
		client.Send(&Response{
			Key:  "gameState",
			Data: data,
		})
	}
}

// clientState tells clients who is at the table
type clientState struct {
	Table    *model.Table `json:"table"`
	Watchers []string     `json:"watchers"`
}

// NOTE: must only be called from the run loop
func (h *Host) sendClientState() {
	watchers := make([]string, 0)
	for _, client := range h.Clients() {
		watchers = append(watchers, client.player.DisplayName)
	}

	data := &clientState{
		Table:    h.record,
		Watchers: watchers,
	}

	for _, client := range h.Clients() {
		client.Send(&Response{
			Key:  "clientState",
			Data: data,
		})
	}
}

// canPlay will send an error message to the client if they are not the table owner
func canPlay(ctx string, c *Client) bool {
	if c.player.ID == c.table.PlayerID {
		return true
	}

	c.Send(newErrorResponse(ctx, errors.New("only the table owner may play")))
	return false
}

// ReceivedMessage is called when a client sends a message to the server
func (h *Host) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case "newRound", "bet", "insurance", "play":
		if !canPlay(msg.Context, c) {
			return
		}

		h.execInRunLoop <- func() {
			if err := h.handleGameMessage(msg); err != nil {
				if !isUserError(err) {
					h.logger.WithError(err).WithField("client", c.String()).Error("could not perform action")
				}

				c.Send(newErrorResponse(msg.Context, err))
				return
			}

			c.Send(OK(msg.Context))
			h.advance()
			h.stateChanged <- stateGameEvent
		}
	default:
		logrus.WithField("msg", msg).Warn("unknown message")
	}
}

// NOTE: must only be called from the run loop
func (h *Host) handleGameMessage(msg *PayloadIn) error {
	if msg.Action == "newRound" {
		if round := h.game.Round(); round != nil && round.State() != blackjack.RoundStateDone {
			return blackjack.UserError("a round is already in progress")
		}

		if !h.game.Ledger().CanBet() {
			return blackjack.UserError("your wallet is below the table minimum")
		}

		_, err := h.game.StartRound(context.Background())
		return err
	}

	round := h.game.Round()
	if round == nil {
		return blackjack.UserError("no round in progress")
	}

	switch msg.Action {
	case "bet":
		amount, ok := msg.AdditionalData["amount"].(float64)
		if !ok {
			return blackjack.UserError("could not obtain amount")
		}

		return round.PlaceBet(currency.Cents(int(amount)))
	case "insurance":
		if declined, _ := msg.AdditionalData["declined"].(bool); declined {
			return round.DeclineInsurance()
		}

		stake, ok := msg.AdditionalData["stake"].(float64)
		if !ok {
			return blackjack.UserError("could not obtain stake")
		}

		return round.BuyInsurance(currency.Cents(int(stake)))
	case "play":
		name, ok := msg.AdditionalData["action"].(string)
		if !ok {
			return blackjack.UserError("could not obtain action")
		}

		action, err := blackjack.ActionFromString(name)
		if err != nil {
			return err
		}

		switch action {
		case blackjack.ActionHit:
			return round.Hit(context.Background())
		case blackjack.ActionStand:
			return round.Stand()
		case blackjack.ActionDoubleDown:
			return round.DoubleDown(context.Background())
		}

		return blackjack.UserError("unknown action")
	}

	return errors.New("unhandled message")
}

// advance drives the round through its automatic transitions and persists the
// wallet once the round settles.
// NOTE: must only be called from the run loop
func (h *Host) advance() {
	round := h.game.Round()
	if round == nil {
		return
	}

	for {
		advanced, err := round.Advance(context.Background())
		if err != nil {
			if errors.Is(err, cardsource.ErrSourceUnavailable) {
				h.logger.WithError(err).Warn("round aborted")
				h.game.AbandonRound()
				for _, client := range h.Clients() {
					client.Send(newErrorResponse("", err))
				}

				return
			}

			h.logger.WithError(err).Error("could not advance round")
			return
		}

		if !advanced {
			break
		}
	}

	if round.State() == blackjack.RoundStateDone {
		result := round.Result()
		if err := h.persist(context.Background(), int(result.Wallet)); err != nil {
			h.logger.WithError(err).Error("could not persist balance")
		}
	}
}

func isUserError(err error) bool {
	var userError blackjack.UserError
	return errors.As(err, &userError)
}
