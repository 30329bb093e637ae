package blackjack

// UserError is an error that is safe to show to the player
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// validation errors. These are recoverable: the caller re-prompts and no
// round or ledger state is modified.
const (
	// ErrInvalidBet is an error when a bet is below the table minimum or above the wallet
	ErrInvalidBet = UserError("bet must be at least the table minimum and no more than your wallet")

	// ErrInsufficientFunds is an error when the wallet cannot cover a doubled bet
	ErrInsufficientFunds = UserError("you do not have enough money to double down")

	// ErrInvalidInsurance is an error when an insurance stake is negative or exceeds half the bet
	ErrInvalidInsurance = UserError("insurance must be between $0.00 and half your bet")
)
