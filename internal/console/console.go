package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"blackjack-server/pkg/blackjack"
	"blackjack-server/pkg/currency"
)

// ErrInputClosed is an error when the input stream ends mid-prompt
var ErrInputClosed = errors.New("input closed")

// Options contains options for the terminal presenter
type Options struct {
	// DealDelay is how long to pause after each hand update
	DealDelay time.Duration

	// ClearScreen redraws the game on a blank screen using ANSI escapes
	ClearScreen bool
}

// Console renders the game as text art on a terminal and collects the
// player's decisions from standard input. Each prompt loops until the input
// is legal, so the value handed back to the round never needs a re-prompt.
type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	opts Options

	dealer *blackjack.HandView
	player *blackjack.HandView

	wallet    currency.Cents
	bet       currency.Cents
	insurance currency.Cents
}

var _ blackjack.Presenter = (*Console)(nil)

// New returns a presenter reading decisions from in and drawing on out
func New(in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{
		in:   bufio.NewScanner(in),
		out:  out,
		opts: opts,
	}
}

// PromptBet asks for a bet in whole dollars until the amount is legal
func (c *Console) PromptBet(min, max currency.Cents) (currency.Cents, error) {
	c.dealer = nil
	c.player = nil
	c.bet = 0
	c.insurance = 0
	c.wallet = max

	c.printf("PLACE YOUR BETS. Minimum: %s.\n", min)
	c.printf("WALLET: %s\n", max)

	for {
		c.printf("MY BET: $")
		line, err := c.readLine()
		if err != nil {
			return 0, err
		}

		amount, err := currency.ParseDollars(line)
		if err != nil {
			c.printf("Please enter a whole number.\n")
			continue
		}

		if amount < min {
			c.printf("TOO LOW. Minimum bet is %s.\n", min)
			continue
		}

		if amount > max {
			c.printf("TOO HIGH. You only have %s in your wallet.\n", max)
			continue
		}

		c.bet = amount
		return amount, nil
	}
}

// PromptAction asks the player to pick one of the available actions
func (c *Console) PromptAction(actions []blackjack.Action) (blackjack.Action, error) {
	prompt := fmt.Sprintf("\nWhat would you like to do? %s: ", actionChoices(actions))

	for {
		c.printf("%s", prompt)
		line, err := c.readLine()
		if err != nil {
			return "", err
		}

		action, err := parseAction(line)
		if err != nil {
			c.printf("That didn't work.\n")
			continue
		}

		if !containsAction(actions, action) {
			c.printf("That didn't work.\n")
			continue
		}

		if action == blackjack.ActionDoubleDown {
			c.bet *= 2
		}

		return action, nil
	}
}

// PromptInsurance asks whether to insure against a dealer blackjack, and for
// how much
func (c *Console) PromptInsurance(maxStake currency.Cents) (currency.Cents, bool, error) {
	for {
		c.printf("Would you like to buy insurance? (Y/N): ")
		line, err := c.readLine()
		if err != nil {
			return 0, false, err
		}

		yes, err := parseYesNo(line)
		if err != nil {
			c.printf("That didn't work.\n")
			continue
		}

		if !yes {
			return 0, false, nil
		}

		break
	}

	c.printf("You can insure up to %s.\n", maxStake)
	for {
		c.printf("How much would you like to insure? $")
		line, err := c.readLine()
		if err != nil {
			return 0, false, err
		}

		stake, err := currency.ParseDollars(line)
		if err != nil {
			c.printf("That didn't work. Please enter a number.\n")
			continue
		}

		if stake <= 0 || stake > maxStake {
			c.printf("That didn't work. You can only insure up to %s.\n", maxStake)
			continue
		}

		c.insurance = stake
		c.printf("INSURANCE: %s\n", stake)
		return stake, true, nil
	}
}

// PromptPlayAgain asks whether to start another round
func (c *Console) PromptPlayAgain() (bool, error) {
	for {
		c.printf("\nWould you like to play again? (Y/N): ")
		line, err := c.readLine()
		if err != nil {
			return false, err
		}

		again, err := parseYesNo(line)
		if err != nil {
			c.printf("That didn't work.\n")
			continue
		}

		return again, nil
	}
}

// HandUpdated redraws the table with the changed hand
func (c *Console) HandUpdated(view blackjack.HandView) {
	switch view.Seat {
	case blackjack.SeatDealer:
		c.dealer = &view
	case blackjack.SeatPlayer:
		c.player = &view
	}

	c.redraw()

	if c.opts.DealDelay > 0 {
		time.Sleep(c.opts.DealDelay)
	}
}

// RoundOutcome reports the settled round and the new wallet
func (c *Console) RoundOutcome(result blackjack.Result) {
	c.wallet = result.Wallet

	c.printf("===============\n")
	switch result.Outcome {
	case blackjack.OutcomeBlackjack:
		c.printf("BLACKJACK! You win!\n")
	case blackjack.OutcomeWin:
		c.printf("You win!\n")
	case blackjack.OutcomePush:
		c.printf("TIE!\n")
	case blackjack.OutcomeLoss:
		c.printf("You lost.\n")
	case blackjack.OutcomeDealerBlackjack:
		c.printf("Dealer has a Blackjack!\n")
	}

	c.printf("WALLET: %s\n", result.Wallet)
}

// SourceFailure reports an aborted round. The bet is returned.
func (c *Console) SourceFailure(err error) {
	c.printf("\nThere was an error drawing the cards. The round is over and your bet is returned.\n")
}

// Goodbye prints the session summary when the player walks away
func (c *Console) Goodbye(startingWallet currency.Cents) {
	c.printf("\n=============== THANKS FOR PLAYING ===============\n")
	c.printf("STARTING WALLET: %s\n", startingWallet)
	c.printf("CURRENT WALLET: %s\n", c.wallet)

	switch {
	case c.wallet < startingWallet:
		c.printf("You lost %s.\n", startingWallet-c.wallet)
	case c.wallet > startingWallet:
		c.printf("You gained %s.\n", c.wallet-startingWallet)
	}

	c.printf("\nPlay again! I'm sure you'll win big!\n")
}

func (c *Console) redraw() {
	if c.opts.ClearScreen {
		c.printf("\033[H\033[2J")
	}

	if c.dealer != nil {
		c.printf("--- DEALER HAND ---\n")
		c.printf("%s", renderCards(c.dealer.Cards, c.dealer.HoleCardHidden))
		if !c.dealer.HoleCardHidden {
			c.printf("DEALER TOTAL: %d\n", c.dealer.Total)
			if c.dealer.Blackjack {
				c.printf("\tBLACKJACK!\n")
			}
		}
	}

	if c.player != nil {
		c.printf("\n----- MY HAND -----\n")
		c.printf("%s", renderCards(c.player.Cards, false))
		c.printf("MY TOTAL: %d\n", c.player.Total)
		if c.player.Blackjack {
			c.printf("\tBLACKJACK!\n")
		}

		if c.bet > 0 {
			c.printf("\nMY BET: %s\n", c.bet)
		}

		if c.insurance > 0 {
			c.printf("INSURANCE: %s\n", c.insurance)
		}

		c.printf("MY WALLET: %s\n", c.wallet)
	}
}

func (c *Console) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}

		return "", ErrInputClosed
	}

	return strings.TrimSpace(c.in.Text()), nil
}

func parseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	}

	return false, fmt.Errorf("expected yes or no, got %q", s)
}

func parseAction(s string) (blackjack.Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "hit":
		return blackjack.ActionHit, nil
	case "s", "stand":
		return blackjack.ActionStand, nil
	case "d", "double down", "double-down":
		return blackjack.ActionDoubleDown, nil
	}

	return "", fmt.Errorf("unknown action: %s", s)
}

func actionChoices(actions []blackjack.Action) string {
	choices := make([]string, len(actions))
	for i, action := range actions {
		switch action {
		case blackjack.ActionHit:
			choices[i] = "(H)IT"
		case blackjack.ActionStand:
			choices[i] = "(S)TAND"
		case blackjack.ActionDoubleDown:
			choices[i] = "(D)OUBLE DOWN"
		}
	}

	return strings.Join(choices, " / ")
}

func containsAction(actions []blackjack.Action, action blackjack.Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}

	return false
}
