package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

// State is a read-only snapshot of a game.
type State struct {
	CurrentPlayer  int
	Direction      Direction
	LastPlayedCard card.Card
	HandCounts     []int
	DeckSize       int
	DiscardSize    int
	GameOver       bool
	Winner         int
}

func (s State) String() string {
	playerStatuses := make([]string, 0, len(s.HandCounts))
	for player, count := range s.HandCounts {
		playerStatuses = append(playerStatuses, fmt.Sprintf("P%d:%d", player, count))
	}
	return fmt.Sprintf(
		"Player %d's turn, Direction: %s, Top: %s, Players cards: %s",
		s.CurrentPlayer,
		s.Direction,
		s.LastPlayedCard,
		strings.Join(playerStatuses, ", "),
	)
}
