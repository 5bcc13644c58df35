package game

import "github.com/ratel-online/uno/uno/card"

// Arrange replaces the piles and hands so tests can stage a position.
// deckCards are drawn front first; the last of discard is the top card.
func (g *Game) Arrange(hands [][]card.Card, deckCards []card.Card, discard []card.Card) {
	for player, hand := range g.hands {
		hand.Clear()
		if player < len(hands) {
			for _, c := range hands[player] {
				hand.PushBack(c)
			}
		}
	}
	g.deck.cards.Clear()
	for _, c := range deckCards {
		g.deck.cards.PushBack(c)
	}
	g.deck.discard.Clear()
	for _, c := range discard {
		g.deck.discard.PushBack(c)
	}
}

func (g *Game) SetTurn(current int, direction Direction) {
	g.players.current = current
	g.players.direction = direction
}

// Arrange for a bare deck, used by the deck tests.
func (d *Deck) Arrange(deckCards []card.Card, discard []card.Card) {
	d.cards = NewSequence(deckCards...)
	d.discard = NewSequence(discard...)
}
