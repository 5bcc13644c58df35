package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// Deck manages the draw pile and the discard pile of one game.
type Deck struct {
	cards    *Sequence
	discard  *Sequence
	shuffler *Shuffler
	events   *event.Emitters
}

func NewDeck(shuffler *Shuffler, events *event.Emitters) *Deck {
	if events == nil {
		events = event.NewEmitters()
	}
	return &Deck{
		cards:    NewSequence(),
		discard:  NewSequence(),
		shuffler: shuffler,
		events:   events,
	}
}

// NewStandardCards returns the 100 cards of a full deck, unshuffled.
func NewStandardCards() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)
	for _, cardColor := range color.All() {
		cards = append(cards, createColorCards(cardColor)...)
	}
	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{card.NewNumberCard(cardColor, 0)}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	return append(cards,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	)
}

// Deal empties both piles, shuffles a full deck, turns the first Number card into the
// discard pile and deals round-robin into hands. Whatever was not dealt is shuffled
// again and becomes the draw pile.
func (d *Deck) Deal(hands []*Sequence) {
	d.cards.Clear()
	d.discard.Clear()
	for _, hand := range hands {
		hand.Clear()
	}

	cards := NewStandardCards()
	d.shuffler.Shuffle(cards)

	discardIndex := firstNumberCardIndex(cards)
	d.discard.PushBack(cards[discardIndex])
	d.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: cards[discardIndex]})

	index := 0
	for round := 0; round < consts.HandSize; round++ {
		for _, hand := range hands {
			if index == discardIndex {
				index++
			}
			if index >= len(cards) {
				break
			}
			hand.PushBack(cards[index])
			index++
		}
	}

	remaining := make([]card.Card, 0, len(cards))
	for i := index; i < len(cards); i++ {
		if i != discardIndex {
			remaining = append(remaining, cards[i])
		}
	}
	d.shuffler.Shuffle(remaining)
	for _, remainingCard := range remaining {
		d.cards.PushBack(remainingCard)
	}
}

func firstNumberCardIndex(cards []card.Card) int {
	for index, candidate := range cards {
		if candidate.Kind() == card.Number {
			return index
		}
	}
	return 0
}

// Draw pops the next card, refilling from the discard pile first if needed.
// It returns card.Invalid when neither pile can supply a card.
func (d *Deck) Draw() card.Card {
	if d.cards.Empty() && d.discard.Size() > 1 {
		d.reshuffle()
	}
	if d.cards.Empty() {
		return card.Invalid
	}
	return d.cards.PopFront()
}

func (d *Deck) reshuffle() {
	discarded := d.discard.Cards()
	top := discarded[len(discarded)-1]
	pool := discarded[:len(discarded)-1]

	d.discard.Clear()
	d.discard.PushBack(top)

	d.shuffler.Shuffle(pool)
	for _, pooledCard := range pool {
		d.cards.PushBack(pooledCard)
	}
	d.events.DeckReshuffled.Emit(event.DeckReshuffledPayload{Amount: len(pool)})
}

func (d *Deck) Discard(c card.Card) {
	d.discard.PushBack(c)
}

// Top is card.Invalid while the discard pile is empty.
func (d *Deck) Top() card.Card {
	return d.discard.PeekBack()
}

func (d *Deck) Size() int {
	return d.cards.Size()
}

func (d *Deck) DiscardSize() int {
	return d.discard.Size()
}

func (d *Deck) Cards() []card.Card {
	return d.cards.Cards()
}

func (d *Deck) Discards() []card.Card {
	return d.discard.Cards()
}
