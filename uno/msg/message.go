package msg

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card.Paint())
}

func (m MessageWriter) PlayerDrewAndPlayedCard(player int, card card.Card) string {
	return Sprintfln("Player %d drew and played %s!", player, card.Paint())
}

func (m MessageWriter) PlayerDrewCards(player int, amount int) string {
	if amount == 1 {
		return Sprintfln("Player %d drew a card!", player)
	}
	return Sprintfln("Player %d drew %d cards!", player, amount)
}

func (m MessageWriter) PlayerPassed(player int, drewCard bool) string {
	if !drewCard {
		return Sprintfln("Player %d passed, nothing left to draw!", player)
	}
	return Sprintfln("Player %d passed!", player)
}

func (m MessageWriter) PlayerPlayedCard(player int, card card.Card) string {
	return Sprintfln("Player %d played %s!", player, card.Paint())
}

func (m MessageWriter) DeckReshuffled(amount int) string {
	return Sprintfln("Deck reshuffled with %d cards!", amount)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(player int) string {
	return Sprintfln("Player %d wins!", player)
}
