package service

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/uno/game"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	ID       string
	Players  int
	Turns    int
	GameOver bool
	Winner   int
	State    game.State
}

// Simulate plays the game until somebody wins or maxTurns more turns have been
// played. The context is checked between turns.
func Simulate(ctx context.Context, id string, maxTurns int) (Result, error) {
	table, err := GetGame(id)
	if err != nil {
		return Result{}, err
	}
	return table.Play(ctx, maxTurns, nil)
}

// Play runs up to maxTurns turns. afterTurn, when set, sees the state after each turn.
func (t *Table) Play(ctx context.Context, maxTurns int, afterTurn func(game.State)) (Result, error) {
	t.Lock()
	defer t.Unlock()

	for played := 0; played < maxTurns && !t.Game.IsGameOver(); played++ {
		if err := ctx.Err(); err != nil {
			return t.result(), err
		}
		t.Game.PlayTurn()
		t.Turns++
		if afterTurn != nil {
			afterTurn(t.Game.State())
		}
	}

	result := t.result()
	if result.GameOver {
		log.Infof("game %s won by player %d after %d turns\n", t.ID, result.Winner, result.Turns)
	} else {
		log.Infof("game %s stopped after %d turns without a winner\n", t.ID, result.Turns)
	}
	return result, nil
}

func (t *Table) result() Result {
	return Result{
		ID:       t.ID,
		Players:  t.Players,
		Turns:    t.Turns,
		GameOver: t.Game.IsGameOver(),
		Winner:   t.Game.WinnerIndex(),
		State:    t.Game.State(),
	}
}

// SimulateAll plays the given games concurrently, one goroutine per game.
// Results keep the order of ids.
func SimulateAll(ctx context.Context, ids []string, maxTurns int) ([]Result, error) {
	results := make([]Result, len(ids))
	group, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			result, err := Simulate(ctx, id, maxTurns)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
