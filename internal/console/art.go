package console

import (
	"strconv"
	"strings"

	"blackjack-server/pkg/deck"
)

const cardRows = 5

var backArt = [cardRows]string{
	"╭┬┬┬┬┬╮",
	"├╳╳╳╳╳┤",
	"├╳╳╳╳╳┤",
	"├╳╳╳╳╳┤",
	"╰┴┴┴┴┴╯",
}

func suitSymbol(s deck.Suit) string {
	switch s {
	case deck.Clubs:
		return "♣"
	case deck.Diamonds:
		return "♦"
	case deck.Hearts:
		return "♥"
	case deck.Spades:
		return "♠"
	}

	return "?"
}

func cardArt(card *deck.Card) [cardRows]string {
	var rank string
	switch card.Rank {
	case deck.Jack:
		rank = "  J  "
	case deck.Queen:
		rank = "  Q  "
	case deck.King:
		rank = "  K  "
	case deck.Ace:
		rank = "  A  "
	case 10:
		rank = " 1 0 "
	default:
		rank = "  " + strconv.Itoa(card.Rank) + "  "
	}

	return [cardRows]string{
		"╭─────╮",
		"│" + rank + "│",
		"│     │",
		"│  " + suitSymbol(card.Suit) + "  │",
		"╰─────╯",
	}
}

// renderCards draws the cards side by side, with a face-down card at the end
// when the dealer's hole card is hidden
func renderCards(cards []*deck.Card, holeCardHidden bool) string {
	art := make([][cardRows]string, 0, len(cards)+1)
	for _, card := range cards {
		art = append(art, cardArt(card))
	}

	if holeCardHidden {
		art = append(art, backArt)
	}

	var sb strings.Builder
	for row := 0; row < cardRows; row++ {
		for i, card := range art {
			if i > 0 {
				sb.WriteString(" ")
			}

			sb.WriteString(card[row])
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
