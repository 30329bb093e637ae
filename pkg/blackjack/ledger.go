package blackjack

import (
	"blackjack-server/pkg/currency"
)

// Ledger tracks a single player's money for the lifetime of a session.
// Bets and insurance stakes are committed during play but the wallet itself
// is only ever mutated by Settle, exactly once per round.
type Ledger struct {
	wallet     currency.Cents
	minimumBet currency.Cents

	bet       currency.Cents
	insurance currency.Cents
	settled   bool
}

// Result is the settled outcome of a round
type Result struct {
	Outcome     Outcome        `json:"outcome"`
	WalletDelta currency.Cents `json:"walletDelta"`
	Wallet      currency.Cents `json:"wallet"`
}

// NewLedger returns a ledger with the starting wallet
func NewLedger(wallet, minimumBet currency.Cents) *Ledger {
	return &Ledger{
		wallet:     wallet,
		minimumBet: minimumBet,
	}
}

// Wallet returns the current wallet balance
func (l *Ledger) Wallet() currency.Cents {
	return l.wallet
}

// MinimumBet returns the table minimum
func (l *Ledger) MinimumBet() currency.Cents {
	return l.minimumBet
}

// Bet returns the current bet
func (l *Ledger) Bet() currency.Cents {
	return l.bet
}

// Insurance returns the current insurance stake
func (l *Ledger) Insurance() currency.Cents {
	return l.insurance
}

// CanBet returns true if the wallet covers the table minimum
func (l *Ledger) CanBet() bool {
	return l.wallet >= l.minimumBet
}

// PlaceBet sets the bet for the round.
// Returns ErrInvalidBet if the amount is below the table minimum or above the wallet.
func (l *Ledger) PlaceBet(amount currency.Cents) error {
	if amount < l.minimumBet || amount > l.wallet {
		return ErrInvalidBet
	}

	l.bet = amount
	return nil
}

// DoubleDown doubles the bet.
// Returns ErrInsufficientFunds if the wallet cannot cover the doubled bet.
func (l *Ledger) DoubleDown() error {
	if l.wallet < l.bet*2 {
		return ErrInsufficientFunds
	}

	l.bet *= 2
	return nil
}

// CanDoubleDown returns true if the wallet covers a doubled bet
func (l *Ledger) CanDoubleDown() bool {
	return l.wallet >= l.bet*2
}

// BuyInsurance commits an insurance stake of up to half the bet.
// The wallet is not touched until settlement.
func (l *Ledger) BuyInsurance(amount currency.Cents) error {
	if amount < 0 || amount > l.bet.Half() {
		return ErrInvalidInsurance
	}

	l.insurance = amount
	return nil
}

// Settle applies the round outcome to the wallet. The delta is computed in
// full before the single wallet mutation, and a ledger only settles once per
// round.
//
// Payouts: blackjack 3:2, ordinary win 1:1, push 0, loss -1x. When the dealer
// has blackjack and insurance was bought, the insurance stake pays 2x and the
// main bet is forfeited regardless of the player's hand; when the dealer does
// not have blackjack, any stake is forfeited on top of the bet outcome.
func (l *Ledger) Settle(outcome Outcome, dealerBlackjack bool) Result {
	if l.settled {
		panic("round has already been settled")
	}

	var delta currency.Cents
	switch outcome {
	case OutcomeBlackjack:
		delta = l.bet.TimesThreeHalves()
	case OutcomeWin:
		delta = l.bet
	case OutcomePush:
		delta = 0
	case OutcomeLoss, OutcomeDealerBlackjack:
		delta = -l.bet
	default:
		panic("cannot settle outcome: " + string(outcome))
	}

	if l.insurance > 0 {
		if dealerBlackjack {
			delta = l.insurance*2 - l.bet
		} else {
			delta -= l.insurance
		}
	}

	l.wallet += delta
	l.settled = true

	return Result{
		Outcome:     outcome,
		WalletDelta: delta,
		Wallet:      l.wallet,
	}
}

// Reset prepares the ledger for a new round. Only the wallet carries over.
func (l *Ledger) Reset() {
	l.bet = 0
	l.insurance = 0
	l.settled = false
}
