package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestShuffle(t *testing.T) {
	t.Run("keeps_every_card", func(t *testing.T) {
		cards := game.NewStandardCards()
		game.NewShuffler(7).Shuffle(cards)
		require.ElementsMatch(t, game.NewStandardCards(), cards)
	})

	t.Run("same_seed_same_calls_same_order", func(t *testing.T) {
		first := game.NewShuffler(1234)
		second := game.NewShuffler(1234)
		for i := 0; i < 3; i++ {
			firstCards := game.NewStandardCards()[:60-10*i]
			secondCards := game.NewStandardCards()[:60-10*i]
			first.Shuffle(firstCards)
			second.Shuffle(secondCards)
			require.Equal(t, firstCards, secondCards)
		}
	})

	t.Run("generator_is_not_reseeded_between_calls", func(t *testing.T) {
		shuffler := game.NewShuffler(1234)
		firstCards := game.NewStandardCards()
		secondCards := game.NewStandardCards()
		shuffler.Shuffle(firstCards)
		shuffler.Shuffle(secondCards)
		require.NotEqual(t, firstCards, secondCards)
	})

	t.Run("handles_tiny_inputs", func(t *testing.T) {
		shuffler := game.NewShuffler(1234)
		shuffler.Shuffle(nil)
		one := game.NewStandardCards()[:1]
		shuffler.Shuffle(one)
		require.Equal(t, game.NewStandardCards()[:1], one)
	})
}
