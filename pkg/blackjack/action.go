package blackjack

import (
	"fmt"
)

// Action is a decision available to the player during their turn
type Action string

// Action constants
const (
	ActionHit        Action = "hit"
	ActionStand      Action = "stand"
	ActionDoubleDown Action = "double-down"
)

func (a Action) String() string {
	return string(a)
}

// ActionFromString returns the action for the string
func ActionFromString(s string) (Action, error) {
	switch Action(s) {
	case ActionHit:
		return ActionHit, nil
	case ActionStand:
		return ActionStand, nil
	case ActionDoubleDown:
		return ActionDoubleDown, nil
	}

	return "", fmt.Errorf("unknown action: %s", s)
}
