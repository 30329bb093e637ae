package blackjack

import (
	"blackjack-server/pkg/currency"
)

// Options contains options for creating a new table
type Options struct {
	StartingWallet currency.Cents
	MinimumBet     currency.Cents
}

// DefaultOptions returns the default set of options: a $100 wallet and a $5
// table minimum
func DefaultOptions() Options {
	return Options{
		StartingWallet: currency.Dollars(100),
		MinimumBet:     currency.Dollars(5),
	}
}
