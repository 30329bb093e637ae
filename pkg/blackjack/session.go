package blackjack

import (
	"context"
	"errors"

	"blackjack-server/pkg/cardsource"

	"github.com/sirupsen/logrus"
)

// Table is a playing session: one ledger and one card-source provider,
// reused across rounds. Each round gets a fresh, fully shuffled deck from
// the provider, and nothing but the wallet survives a round.
type Table struct {
	provider cardsource.Provider
	ledger   *Ledger
	logger   logrus.FieldLogger
	round    *Round
}

// NewTable returns a table ready for its first round
func NewTable(logger logrus.FieldLogger, provider cardsource.Provider, opts Options) *Table {
	return &Table{
		provider: provider,
		ledger:   NewLedger(opts.StartingWallet, opts.MinimumBet),
		logger:   logger,
	}
}

// Ledger returns the table's ledger
func (t *Table) Ledger() *Ledger {
	return t.ledger
}

// Round returns the round in progress, or nil
func (t *Table) Round() *Round {
	return t.round
}

// AbandonRound discards a round that can no longer continue, such as after a
// card-source failure. The wallet is untouched.
func (t *Table) AbandonRound() {
	t.round = nil
}

// StartRound requests a fresh deck and opens a new round for betting
func (t *Table) StartRound(ctx context.Context) (*Round, error) {
	source, err := t.provider.NewDeck(ctx)
	if err != nil {
		return nil, err
	}

	t.round = NewRound(t.logger, source, t.ledger)
	return t.round, nil
}

// Run plays rounds against the presenter until the player declines another
// round, goes broke, or a prompt fails. A card-source failure aborts the
// round in progress with the wallet untouched and offers a fresh round.
func (t *Table) Run(ctx context.Context, presenter Presenter) error {
	for {
		if !t.ledger.CanBet() {
			t.logger.WithField("wallet", t.ledger.Wallet().String()).Info("wallet below table minimum")
			return nil
		}

		err := t.playRound(ctx, presenter)
		if err != nil {
			if !errors.Is(err, cardsource.ErrSourceUnavailable) {
				return err
			}

			// mid-round failures cannot be resumed against a different deck
			t.logger.WithError(err).Warn("round aborted")
			t.AbandonRound()
			presenter.SourceFailure(err)
		}

		again, err := presenter.PromptPlayAgain()
		if err != nil {
			return err
		}

		if !again {
			return nil
		}
	}
}

func (t *Table) playRound(ctx context.Context, presenter Presenter) error {
	round, err := t.StartRound(ctx)
	if err != nil {
		return err
	}

	round.SetNotify(presenter.HandUpdated)

	for {
		if _, err := round.Advance(ctx); err != nil {
			return err
		}

		switch round.State() {
		case RoundStateBetting:
			if err := t.promptBet(round, presenter); err != nil {
				return err
			}
		case RoundStateInsuranceOffer:
			if err := t.promptInsurance(round, presenter); err != nil {
				return err
			}
		case RoundStatePlayerTurn:
			if err := t.promptAction(ctx, round, presenter); err != nil {
				return err
			}
		case RoundStateDone:
			presenter.RoundOutcome(*round.Result())
			return nil
		}
	}
}

func (t *Table) promptBet(round *Round, presenter Presenter) error {
	for {
		bet, err := presenter.PromptBet(t.ledger.MinimumBet(), t.ledger.Wallet())
		if err != nil {
			return err
		}

		if err := round.PlaceBet(bet); err != nil {
			if isUserError(err) {
				continue
			}

			return err
		}

		return nil
	}
}

func (t *Table) promptInsurance(round *Round, presenter Presenter) error {
	for {
		stake, accepted, err := presenter.PromptInsurance(round.MaxInsurance())
		if err != nil {
			return err
		}

		if !accepted {
			return round.DeclineInsurance()
		}

		if err := round.BuyInsurance(stake); err != nil {
			if isUserError(err) {
				continue
			}

			return err
		}

		return nil
	}
}

func (t *Table) promptAction(ctx context.Context, round *Round, presenter Presenter) error {
	for {
		action, err := presenter.PromptAction(round.ValidActions())
		if err != nil {
			return err
		}

		switch action {
		case ActionHit:
			err = round.Hit(ctx)
		case ActionStand:
			err = round.Stand()
		case ActionDoubleDown:
			err = round.DoubleDown(ctx)
		default:
			continue
		}

		if err != nil {
			if isUserError(err) {
				continue
			}

			return err
		}

		return nil
	}
}

func isUserError(err error) bool {
	var userError UserError
	return errors.As(err, &userError)
}
