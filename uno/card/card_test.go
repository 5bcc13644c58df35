package card_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	scenarios := []struct {
		card     card.Card
		expected string
	}{
		{card.NewNumberCard(color.Red, 0), "Red 0"},
		{card.NewNumberCard(color.Blue, 5), "Blue 5"},
		{card.NewSkipCard(color.Yellow), "Yellow Skip"},
		{card.NewReverseCard(color.Green), "Green Reverse"},
		{card.NewDrawTwoCard(color.Red), "Red Draw Two"},
		{card.Invalid, "None -1"},
	}

	for _, scenario := range scenarios {
		assert.Equal(t, scenario.expected, scenario.card.String())
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, card.NewNumberCard(color.Red, 6).Equal(card.NewNumberCard(color.Red, 6)))
	assert.False(t, card.NewNumberCard(color.Red, 6).Equal(card.NewNumberCard(color.Red, 7)))
	assert.False(t, card.NewSkipCard(color.Red).Equal(card.NewReverseCard(color.Red)))
	assert.False(t, card.NewSkipCard(color.Red).Equal(card.NewSkipCard(color.Blue)))
}

func TestAccessors(t *testing.T) {
	numberCard := card.NewNumberCard(color.Green, 4)
	require.Equal(t, color.Green, numberCard.Color())
	require.Equal(t, card.Number, numberCard.Kind())
	require.Equal(t, 4, numberCard.Number())
	require.False(t, numberCard.IsAction())

	drawTwoCard := card.NewDrawTwoCard(color.Blue)
	require.Equal(t, card.DrawTwo, drawTwoCard.Kind())
	require.Equal(t, -1, drawTwoCard.Number())
	require.True(t, drawTwoCard.IsAction())

	require.True(t, card.Invalid.IsInvalid())
	require.False(t, numberCard.IsInvalid())
}

func TestMatches(t *testing.T) {
	t.Run("color", func(t *testing.T) {
		assert.True(t, card.NewSkipCard(color.Red).Matches(card.NewNumberCard(color.Red, 2)))
	})
	t.Run("same_action", func(t *testing.T) {
		assert.True(t, card.NewSkipCard(color.Red).Matches(card.NewSkipCard(color.Blue)))
		assert.False(t, card.NewSkipCard(color.Red).Matches(card.NewReverseCard(color.Blue)))
	})
	t.Run("same_number", func(t *testing.T) {
		assert.True(t, card.NewNumberCard(color.Green, 2).Matches(card.NewNumberCard(color.Blue, 2)))
		assert.False(t, card.NewNumberCard(color.Green, 2).Matches(card.NewNumberCard(color.Blue, 3)))
	})
	t.Run("invalid", func(t *testing.T) {
		assert.False(t, card.Invalid.Matches(card.Invalid))
		assert.False(t, card.Invalid.Matches(card.NewNumberCard(color.Blue, 3)))
	})
}

func TestActions(t *testing.T) {
	assert.Empty(t, card.NewNumberCard(color.Red, 1).Actions())
	assert.Equal(t, []action.Action{action.NewSkipTurnAction()}, card.NewSkipCard(color.Red).Actions())
	assert.Equal(t, []action.Action{action.NewReverseTurnsAction()}, card.NewReverseCard(color.Red).Actions())
	assert.Equal(t, []action.Action{
		action.NewDrawCardsAction(2),
		action.NewSkipTurnAction(),
	}, card.NewDrawTwoCard(color.Red).Actions())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Number", card.Number.String())
	assert.Equal(t, "Draw Two", card.DrawTwo.String())
	assert.Equal(t, "Kind(9)", card.Kind(9).String())
}
