package blackjack

import (
	"context"
	"fmt"

	"blackjack-server/pkg/cardsource"
	"blackjack-server/pkg/currency"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Round is the state machine for a single round of blackjack:
// betting -> dealing -> insurance-offer (dealer ace only) -> player-turn ->
// dealer-turn -> settlement -> done.
//
// A round owns its hands and bet exclusively; nothing carries over to the
// next round except the wallet on the ledger. Action methods validate the
// current state and mutating steps that need no player input are driven by
// Advance.
type Round struct {
	ID     string
	source cardsource.Source
	ledger *Ledger
	player *Player
	dealer *Dealer
	logger logrus.FieldLogger

	state            RoundState
	holeCardRevealed bool
	decisions        int

	// outcome is set as soon as play ends; settlement applies it
	outcome         Outcome
	dealerBlackjack bool
	result          *Result

	notify func(HandView)
}

// NewRound returns a round in the betting state. The ledger is reset so only
// the wallet carries over from the previous round.
func NewRound(logger logrus.FieldLogger, source cardsource.Source, ledger *Ledger) *Round {
	ledger.Reset()

	id := uuid.New().String()
	return &Round{
		ID:     id,
		source: source,
		ledger: ledger,
		player: NewPlayer(),
		dealer: NewDealer(),
		logger: logger.WithField("round", id),
		state:  RoundStateBetting,
		notify: func(HandView) {},
	}
}

// SetNotify registers a callback invoked whenever a visible hand changes
func (r *Round) SetNotify(notify func(HandView)) {
	if notify == nil {
		notify = func(HandView) {}
	}

	r.notify = notify
}

// State returns the current round state
func (r *Round) State() RoundState {
	return r.state
}

// Ledger returns the round's ledger
func (r *Round) Ledger() *Ledger {
	return r.ledger
}

// Result returns the settled result, or nil if the round is not done
func (r *Round) Result() *Result {
	return r.result
}

// PlaceBet accepts a bet in [minimum, wallet] and closes betting
func (r *Round) PlaceBet(amount currency.Cents) error {
	if r.state != RoundStateBetting {
		return fmt.Errorf("cannot place a bet from state: %s", r.state)
	}

	if err := r.ledger.PlaceBet(amount); err != nil {
		return err
	}

	r.logger.WithField("bet", amount.String()).Debug("bet placed")
	r.state = RoundStateDealing
	return nil
}

// Deal deals the opening cards in the fixed order: player, dealer face-up,
// player, dealer face-down. If the dealer shows an ace the round moves to the
// insurance offer; otherwise blackjacks are evaluated immediately.
func (r *Round) Deal(ctx context.Context) error {
	if r.state != RoundStateDealing {
		return fmt.Errorf("cannot deal from state: %s", r.state)
	}

	for _, seat := range []Seat{SeatPlayer, SeatDealer, SeatPlayer, SeatDealer} {
		card, err := r.source.Draw(ctx)
		if err != nil {
			return err
		}

		if seat == SeatPlayer {
			r.player.ReceiveCard(card)
			r.notify(r.PlayerView())
		} else {
			r.dealer.ReceiveCard(card)
			r.notify(r.DealerView())
		}
	}

	if r.dealer.OffersInsurance() {
		r.state = RoundStateInsuranceOffer
		return nil
	}

	r.evaluateBlackjacks()
	return nil
}

// InsuranceOffered returns true if the round is waiting on an insurance decision
func (r *Round) InsuranceOffered() bool {
	return r.state == RoundStateInsuranceOffer
}

// MaxInsurance returns the largest legal insurance stake
func (r *Round) MaxInsurance() currency.Cents {
	return r.ledger.Bet().Half()
}

// BuyInsurance commits an insurance stake and resolves the offer
func (r *Round) BuyInsurance(amount currency.Cents) error {
	if r.state != RoundStateInsuranceOffer {
		return fmt.Errorf("cannot buy insurance from state: %s", r.state)
	}

	if err := r.ledger.BuyInsurance(amount); err != nil {
		return err
	}

	r.logger.WithField("insurance", amount.String()).Debug("insurance bought")
	r.resolveInsurance()
	return nil
}

// DeclineInsurance declines the offer and resolves it
func (r *Round) DeclineInsurance() error {
	if r.state != RoundStateInsuranceOffer {
		return fmt.Errorf("cannot decline insurance from state: %s", r.state)
	}

	r.resolveInsurance()
	return nil
}

// resolveInsurance peeks at the hole card. A dealer blackjack ends the round
// on the spot; otherwise any stake is forfeited at settlement and play
// continues with the hole card still hidden.
func (r *Round) resolveInsurance() {
	if r.dealer.HasBlackjack() {
		r.dealerBlackjack = true
		r.revealHoleCard()

		if r.player.HasBlackjack() {
			r.endPlay(OutcomePush)
		} else {
			r.endPlay(OutcomeDealerBlackjack)
		}

		return
	}

	r.evaluateBlackjacks()
}

// evaluateBlackjacks runs the post-deal blackjack check. A player blackjack
// ends the round immediately: a 3:2 win unless the dealer also has blackjack,
// in which case it's a push. Otherwise play proceeds to the player's turn.
func (r *Round) evaluateBlackjacks() {
	if r.player.HasBlackjack() {
		if r.dealer.HasBlackjack() {
			r.dealerBlackjack = true
			r.revealHoleCard()
			r.endPlay(OutcomePush)
			return
		}

		r.endPlay(OutcomeBlackjack)
		return
	}

	r.state = RoundStatePlayerTurn
}

// ValidActions returns the player's legal decisions.
// Double down is only legal as the first decision and only if the wallet
// covers the doubled bet.
func (r *Round) ValidActions() []Action {
	if r.state != RoundStatePlayerTurn {
		return nil
	}

	actions := []Action{ActionHit, ActionStand}
	if r.decisions == 0 && r.ledger.CanDoubleDown() {
		actions = append(actions, ActionDoubleDown)
	}

	return actions
}

// Hit draws one card for the player. A bust ends the round immediately and
// the dealer never plays.
func (r *Round) Hit(ctx context.Context) error {
	if r.state != RoundStatePlayerTurn {
		return fmt.Errorf("cannot hit from state: %s", r.state)
	}

	card, err := r.source.Draw(ctx)
	if err != nil {
		return err
	}

	r.decisions++
	r.player.ReceiveCard(card)
	r.notify(r.PlayerView())

	if r.player.Hand().IsBust() {
		r.endPlay(OutcomeLoss)
	}

	return nil
}

// Stand ends the player's turn
func (r *Round) Stand() error {
	if r.state != RoundStatePlayerTurn {
		return fmt.Errorf("cannot stand from state: %s", r.state)
	}

	r.decisions++
	r.beginDealerTurn()
	return nil
}

// DoubleDown doubles the bet, draws exactly one card, and ends the player's
// turn. It is only legal as the player's first decision of the round.
func (r *Round) DoubleDown(ctx context.Context) error {
	if r.state != RoundStatePlayerTurn {
		return fmt.Errorf("cannot double down from state: %s", r.state)
	}

	if r.decisions > 0 {
		return UserError("double down is only available as your first decision")
	}

	if err := r.ledger.DoubleDown(); err != nil {
		return err
	}

	card, err := r.source.Draw(ctx)
	if err != nil {
		return err
	}

	r.decisions++
	r.player.ReceiveCard(card)
	r.notify(r.PlayerView())

	if r.player.Hand().IsBust() {
		r.endPlay(OutcomeLoss)
		return nil
	}

	r.beginDealerTurn()
	return nil
}

func (r *Round) beginDealerTurn() {
	r.state = RoundStateDealerTurn
	r.revealHoleCard()
}

// DealerStep advances the dealer's fixed policy by one card: hit below
// seventeen, stand on seventeen through twenty-one. A dealer bust ends play
// with a player win.
func (r *Round) DealerStep(ctx context.Context) error {
	if r.state != RoundStateDealerTurn {
		return fmt.Errorf("cannot play the dealer from state: %s", r.state)
	}

	if !r.dealer.MustDraw() {
		r.state = RoundStateSettlement
		return nil
	}

	card, err := r.source.Draw(ctx)
	if err != nil {
		return err
	}

	r.dealer.ReceiveCard(card)
	r.notify(r.DealerView())

	if r.dealer.Hand().IsBust() {
		r.endPlay(OutcomeWin)
	}

	return nil
}

// Settle compares hands if play didn't already decide the outcome, then
// applies the single wallet mutation for the round.
func (r *Round) Settle() (Result, error) {
	if r.state != RoundStateSettlement {
		return Result{}, fmt.Errorf("cannot settle from state: %s", r.state)
	}

	if r.outcome == "" {
		r.outcome = r.compareHands()
	}

	result := r.ledger.Settle(r.outcome, r.dealerBlackjack)
	r.result = &result
	r.state = RoundStateDone

	r.logger.WithFields(logrus.Fields{
		"outcome": result.Outcome,
		"delta":   result.WalletDelta.String(),
		"wallet":  result.Wallet.String(),
	}).Debug("round settled")

	return result, nil
}

// compareHands decides the outcome when both participants stood.
// Higher total wins; on equal totals a lone dealer blackjack beats a
// non-blackjack hand, and anything else is a push.
func (r *Round) compareHands() Outcome {
	playerTotal := r.player.Hand().Total()
	dealerTotal := r.dealer.Hand().Total()
	r.dealerBlackjack = r.dealer.HasBlackjack()

	switch {
	case playerTotal > dealerTotal:
		return OutcomeWin
	case playerTotal < dealerTotal:
		if r.dealerBlackjack {
			return OutcomeDealerBlackjack
		}

		return OutcomeLoss
	case r.dealerBlackjack && !r.player.HasBlackjack():
		return OutcomeDealerBlackjack
	default:
		return OutcomePush
	}
}

// endPlay records the outcome and moves to settlement. The hole card is
// revealed so the final state shows the full dealer hand.
func (r *Round) endPlay(outcome Outcome) {
	r.outcome = outcome
	r.revealHoleCard()
	r.state = RoundStateSettlement
}

func (r *Round) revealHoleCard() {
	if r.holeCardRevealed {
		return
	}

	r.holeCardRevealed = true
	if r.dealer.Hand().Count() > 0 {
		r.notify(r.DealerView())
	}
}

// Advance performs the next automatic transition, if any, and reports
// whether the round changed. States that wait on player input never advance.
func (r *Round) Advance(ctx context.Context) (bool, error) {
	switch r.state {
	case RoundStateDealing:
		if err := r.Deal(ctx); err != nil {
			return false, err
		}

		return true, nil
	case RoundStateDealerTurn:
		if err := r.DealerStep(ctx); err != nil {
			return false, err
		}

		return true, nil
	case RoundStateSettlement:
		if _, err := r.Settle(); err != nil {
			return false, err
		}

		return true, nil
	}

	return false, nil
}

// PlayerView returns the presenter's view of the player hand
func (r *Round) PlayerView() HandView {
	hand := r.player.Hand()
	return HandView{
		Seat:      SeatPlayer,
		Cards:     hand.Cards(),
		Total:     hand.Total(),
		Blackjack: hand.IsBlackjack(),
		Bust:      hand.IsBust(),
	}
}

// DealerView returns the presenter's view of the dealer hand. Until the hole
// card is revealed, only the face-up card and its total are visible.
func (r *Round) DealerView() HandView {
	hand := r.dealer.Hand()
	if r.holeCardRevealed || hand.Count() < 2 {
		return HandView{
			Seat:           SeatDealer,
			Cards:          hand.Cards(),
			Total:          hand.Total(),
			Blackjack:      r.holeCardRevealed && hand.IsBlackjack(),
			Bust:           hand.IsBust(),
			HoleCardHidden: false,
		}
	}

	visible := NewHand()
	visible.AddCard(hand.FirstCard())
	return HandView{
		Seat:           SeatDealer,
		Cards:          visible.Cards(),
		Total:          visible.Total(),
		HoleCardHidden: true,
	}
}
