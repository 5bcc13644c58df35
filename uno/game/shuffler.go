package game

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
)

// Shuffler owns the one generator of a game. It is seeded once and never reseeded,
// so the same seed and the same sequence of calls give the same orders.
type Shuffler struct {
	rng *rand.Rand
}

func NewShuffler(seed int64) *Shuffler {
	return &Shuffler{rng: rand.New(rand.NewSource(seed))}
}

// Shuffle permutes cards in place (Fisher-Yates).
func (s *Shuffler) Shuffle(cards []card.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
