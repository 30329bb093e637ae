package blackjack

// RoundState is the state of the current round
type RoundState string

// RoundState constants
const (
	// RoundStateBetting is before a bet has been placed
	RoundStateBetting RoundState = "betting"

	// RoundStateDealing means a bet is placed and the opening cards have not been dealt
	RoundStateDealing RoundState = "dealing"

	// RoundStateInsuranceOffer means the dealer shows an ace and the player may buy insurance
	RoundStateInsuranceOffer RoundState = "insurance-offer"

	// RoundStatePlayerTurn means the player is deciding to hit, stand, or double down
	RoundStatePlayerTurn RoundState = "player-turn"

	// RoundStateDealerTurn means the dealer is drawing to seventeen
	RoundStateDealerTurn RoundState = "dealer-turn"

	// RoundStateSettlement means play is over and the outcome has not been applied to the wallet
	RoundStateSettlement RoundState = "settlement"

	// RoundStateDone means the wallet is settled and the round is discarded
	RoundStateDone RoundState = "done"
)

// Outcome is how a round ended for the player
type Outcome string

// Outcome constants
const (
	// OutcomeBlackjack is a player blackjack win, paying 3:2
	OutcomeBlackjack Outcome = "blackjack"

	// OutcomeWin is an ordinary win, paying 1:1
	OutcomeWin Outcome = "win"

	// OutcomePush is a tie; no money changes hands
	OutcomePush Outcome = "push"

	// OutcomeLoss is an ordinary loss of the bet
	OutcomeLoss Outcome = "loss"

	// OutcomeDealerBlackjack is a loss to a dealer blackjack, where insurance pays
	OutcomeDealerBlackjack Outcome = "dealer-blackjack"
)

// Seat identifies whose hand is being reported
type Seat string

// Seat constants
const (
	SeatPlayer Seat = "player"
	SeatDealer Seat = "dealer"
)
