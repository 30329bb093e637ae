package blackjack

import (
	"blackjack-server/pkg/currency"
	"blackjack-server/pkg/deck"
)

// HandView is what a presenter is allowed to see of a hand. While the
// dealer's hole card is hidden, the view contains only the visible cards.
type HandView struct {
	Seat      Seat         `json:"seat"`
	Cards     []*deck.Card `json:"cards"`
	Total     int          `json:"total"`
	Blackjack bool         `json:"blackjack"`
	Bust      bool         `json:"bust"`

	// HoleCardHidden is set on the dealer view until the hole card is revealed
	HoleCardHidden bool `json:"holeCardHidden,omitempty"`
}

// Presenter is the presentation and input collaborator. The round blocks on
// every prompt; validation and re-prompting is the presenter's own loop, so
// a value returned from a prompt is expected to already be legal. How any of
// this renders (text art, websocket payloads) is no concern of the core.
type Presenter interface {
	// PromptBet asks for a bet in [min, max]
	PromptBet(min, max currency.Cents) (currency.Cents, error)

	// PromptAction asks the player to choose one of the available actions
	PromptAction(actions []Action) (Action, error)

	// PromptInsurance asks for an insurance stake up to maxStake.
	// The second return value is false if the player declines.
	PromptInsurance(maxStake currency.Cents) (currency.Cents, bool, error)

	// PromptPlayAgain asks whether to start another round
	PromptPlayAgain() (bool, error)

	// HandUpdated is called whenever a hand changes or is revealed
	HandUpdated(view HandView)

	// RoundOutcome is called once per settled round
	RoundOutcome(result Result)

	// SourceFailure is called when the card source fails mid-round.
	// The round is aborted and the wallet is untouched.
	SourceFailure(err error)
}
