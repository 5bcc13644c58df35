package service_test

import (
	"context"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/service"
	"github.com/stretchr/testify/require"
)

func TestCreateGame(t *testing.T) {
	t.Run("registers_an_initialized_game", func(t *testing.T) {
		table, err := service.CreateGame(3)
		require.NoError(t, err)
		defer service.DeleteGame(table.ID)

		found, err := service.GetGame(table.ID)
		require.NoError(t, err)
		require.Same(t, table, found)
		require.Equal(t, []int{7, 7, 7}, found.Game.State().HandCounts)
		require.Contains(t, service.GetGames(), table)
	})

	t.Run("rejects_invalid_player_counts", func(t *testing.T) {
		_, err := service.CreateGame(0)
		require.ErrorIs(t, err, consts.ErrorsGamePlayersInvalid)
	})
}

func TestDeleteGame(t *testing.T) {
	table, err := service.CreateGame(2)
	require.NoError(t, err)
	service.DeleteGame(table.ID)

	_, err = service.GetGame(table.ID)
	require.ErrorIs(t, err, consts.ErrorsGameNotFound)
	require.NotContains(t, service.GetGames(), table)
}

func TestSimulate(t *testing.T) {
	t.Run("stops_after_max_turns", func(t *testing.T) {
		table, err := service.CreateGame(4)
		require.NoError(t, err)
		defer service.DeleteGame(table.ID)

		result, err := service.Simulate(context.Background(), table.ID, 3)
		require.NoError(t, err)
		require.Equal(t, table.ID, result.ID)
		require.Equal(t, 4, result.Players)
		require.LessOrEqual(t, result.Turns, 3)
		require.Equal(t, table.Game.State(), result.State)
	})

	t.Run("plays_until_a_winner", func(t *testing.T) {
		table, err := service.CreateGame(2)
		require.NoError(t, err)
		defer service.DeleteGame(table.ID)

		result, err := service.Simulate(context.Background(), table.ID, 100000)
		require.NoError(t, err)
		require.True(t, result.GameOver)
		require.Equal(t, 0, result.Winner)
		require.Equal(t, 53, result.Turns)
		require.Zero(t, result.State.HandCounts[result.Winner])
		require.Equal(t, consts.DeckSize, result.State.DeckSize+result.State.DiscardSize+result.State.HandCounts[1])
	})

	t.Run("honours_a_cancelled_context", func(t *testing.T) {
		table, err := service.CreateGame(2)
		require.NoError(t, err)
		defer service.DeleteGame(table.ID)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		result, err := service.Simulate(ctx, table.ID, 10)
		require.ErrorIs(t, err, context.Canceled)
		require.Zero(t, result.Turns)
	})

	t.Run("unknown_game", func(t *testing.T) {
		_, err := service.Simulate(context.Background(), "missing", 10)
		require.ErrorIs(t, err, consts.ErrorsGameNotFound)
	})
}

func TestPlayCallsBackAfterEachTurn(t *testing.T) {
	table, err := service.CreateGame(3)
	require.NoError(t, err)
	defer service.DeleteGame(table.ID)

	var states []game.State
	result, err := table.Play(context.Background(), 5, func(state game.State) {
		states = append(states, state)
	})
	require.NoError(t, err)
	require.Len(t, states, result.Turns)
}

func TestSimulateAll(t *testing.T) {
	ids := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		table, err := service.CreateGame(3)
		require.NoError(t, err)
		ids = append(ids, table.ID)
	}
	defer func() {
		for _, id := range ids {
			service.DeleteGame(id)
		}
	}()

	results, err := service.SimulateAll(context.Background(), ids, 500)
	require.NoError(t, err)
	require.Len(t, results, len(ids))
	for i, result := range results {
		require.Equal(t, ids[i], result.ID)
		// every game uses the default seed, so they all play out the same way
		require.Equal(t, results[0].Turns, result.Turns)
		require.Equal(t, results[0].Winner, result.Winner)
		require.Equal(t, results[0].State.String(), result.State.String())
	}
}
