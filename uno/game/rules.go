package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	return candidateCard.Matches(lastPlayedCard)
}

// PlayableCards lists the cards of hand that match lastPlayedCard, in hand order.
func PlayableCards(hand *Sequence, lastPlayedCard card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range hand.cards {
		if Playable(candidateCard, lastPlayedCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// Policy picks the card a player puts down. ok is false when nothing in hand matches.
type Policy interface {
	Select(hand *Sequence, lastPlayedCard card.Card) (selected card.Card, ok bool)
}

// PriorityPolicy keeps the color going where it can: same color first, then same
// number, then Skip, Reverse and Draw Two in that order.
type PriorityPolicy struct{}

var actionOrder = []card.Kind{card.Skip, card.Reverse, card.DrawTwo}

func (PriorityPolicy) Select(hand *Sequence, lastPlayedCard card.Card) (card.Card, bool) {
	playableCards := PlayableCards(hand, lastPlayedCard)
	if len(playableCards) == 0 {
		return card.Invalid, false
	}

	for _, candidateCard := range playableCards {
		if candidateCard.Color() == lastPlayedCard.Color() {
			return candidateCard, true
		}
	}

	if lastPlayedCard.Kind() == card.Number {
		for _, candidateCard := range playableCards {
			if candidateCard.Kind() == card.Number && candidateCard.Number() == lastPlayedCard.Number() {
				return candidateCard, true
			}
		}
	}

	for _, kind := range actionOrder {
		for _, candidateCard := range playableCards {
			if candidateCard.Kind() == kind {
				return candidateCard, true
			}
		}
	}

	return playableCards[0], true
}

// FirstPlayablePolicy puts down the first matching card in hand order.
type FirstPlayablePolicy struct{}

func (FirstPlayablePolicy) Select(hand *Sequence, lastPlayedCard card.Card) (card.Card, bool) {
	playableCards := PlayableCards(hand, lastPlayedCard)
	if len(playableCards) == 0 {
		return card.Invalid, false
	}
	return playableCards[0], true
}

// FollowUpPolicy puts down the matching card that the most cards in hand can follow.
// Ties go to the earlier card.
type FollowUpPolicy struct{}

func (FollowUpPolicy) Select(hand *Sequence, lastPlayedCard card.Card) (card.Card, bool) {
	playableCards := PlayableCards(hand, lastPlayedCard)
	if len(playableCards) == 0 {
		return card.Invalid, false
	}

	mostDiscardableCardIndex := 0
	maxSpareCards := 0
	for cardIndex, playableCard := range playableCards {
		spareCards := 0
		for _, handCard := range hand.cards {
			if Playable(handCard, playableCard) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}
	return playableCards[mostDiscardableCardIndex], true
}

var policies = map[string]Policy{
	"priority":  PriorityPolicy{},
	"first":     FirstPlayablePolicy{},
	"follow-up": FollowUpPolicy{},
}

// PolicyByName resolves "priority", "first" or "follow-up".
func PolicyByName(name string) (Policy, error) {
	policy, ok := policies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("invalid policy '%s'", name)
	}
	return policy, nil
}
