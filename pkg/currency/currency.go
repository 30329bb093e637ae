package currency

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotWholeDollars is an error when a parsed amount contains cents
var ErrNotWholeDollars = errors.New("amount must be in whole dollars")

// Cents is a monetary amount in US cents.
// All wallet, bet, and insurance arithmetic is done in cents so that
// settlement math never loses precision. Formatting to dollars happens
// only at the display boundary.
type Cents int

// Dollars returns the amount for a whole number of dollars
func Dollars(n int) Cents {
	return Cents(n * 100)
}

func (c Cents) String() string {
	sign := ""
	val := int(c)
	if val < 0 {
		sign = "-"
		val = -val
	}

	return fmt.Sprintf("%s$%d.%02d", sign, val/100, val%100)
}

// Half returns half of the amount.
// Whole-dollar amounts halve exactly; anything finer rounds down.
func (c Cents) Half() Cents {
	return c / 2
}

// TimesThreeHalves returns the amount at a 3:2 payout
func (c Cents) TimesThreeHalves() Cents {
	return c * 3 / 2
}

// ParseDollars parses user input like "50", "$50", or "50.00" into cents.
// Fractional dollar amounts are rejected with ErrNotWholeDollars since
// bets are placed in whole-currency units.
func ParseDollars(s string) (Cents, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, errors.New("no amount provided")
	}

	if i := strings.IndexByte(s, '.'); i >= 0 {
		frac := s[i+1:]
		if strings.TrimRight(frac, "0") != "" {
			return 0, ErrNotWholeDollars
		}

		s = s[:i]
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("could not parse amount: %s", s)
	}

	return Dollars(n), nil
}
