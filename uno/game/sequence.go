package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Sequence is an ordered run of cards. Hands, the deck and the discard pile are all
// sequences: the deck draws from the front, the discard pile's top is the back.
type Sequence struct {
	cards []card.Card
}

func NewSequence(cards ...card.Card) *Sequence {
	s := &Sequence{cards: make([]card.Card, 0, len(cards))}
	s.cards = append(s.cards, cards...)
	return s
}

func (s *Sequence) PushBack(c card.Card) {
	s.cards = append(s.cards, c)
}

func (s *Sequence) PushFront(c card.Card) {
	s.cards = append(s.cards, card.Invalid)
	copy(s.cards[1:], s.cards)
	s.cards[0] = c
}

// PopFront returns card.Invalid when the sequence is empty.
func (s *Sequence) PopFront() card.Card {
	if len(s.cards) == 0 {
		return card.Invalid
	}
	front := s.cards[0]
	s.cards[0] = card.Invalid
	s.cards = s.cards[1:]
	return front
}

func (s *Sequence) PeekFront() card.Card {
	if len(s.cards) == 0 {
		return card.Invalid
	}
	return s.cards[0]
}

func (s *Sequence) PeekBack() card.Card {
	if len(s.cards) == 0 {
		return card.Invalid
	}
	return s.cards[len(s.cards)-1]
}

func (s *Sequence) Size() int {
	return len(s.cards)
}

func (s *Sequence) Empty() bool {
	return len(s.cards) == 0
}

// RemoveFirst removes a single copy of c, keeping the order of the rest.
func (s *Sequence) RemoveFirst(c card.Card) bool {
	for index, candidate := range s.cards {
		if candidate.Equal(c) {
			s.cards = append(s.cards[:index], s.cards[index+1:]...)
			return true
		}
	}
	return false
}

// Cards returns a copy, front to back.
func (s *Sequence) Cards() []card.Card {
	cards := make([]card.Card, len(s.cards))
	copy(cards, s.cards)
	return cards
}

func (s *Sequence) Clear() {
	s.cards = s.cards[:0]
}
