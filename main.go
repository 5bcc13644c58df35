package main

import (
	"context"
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/config"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Error(err)
		return
	}
	color.Enable(cfg.Color)
	fmt.Fprint(color.Stdout, msg.Message.Welcome())

	ids := make([]string, 0, cfg.Games)
	for i := 0; i < cfg.Games; i++ {
		table, err := service.CreateGame(cfg.Players, cfg.Options(i)...)
		if err != nil {
			log.Error(err)
			return
		}
		ids = append(ids, table.ID)
	}
	defer func() {
		for _, id := range ids {
			service.DeleteGame(id)
		}
	}()

	ctx := context.Background()
	if cfg.Games == 1 {
		play(ctx, cfg, ids[0])
		return
	}

	results, err := service.SimulateAll(ctx, ids, cfg.MaxTurns)
	if err != nil {
		log.Error(err)
		return
	}
	for _, result := range results {
		report(result)
	}
}

// play runs a single game in the foreground, narrating it when verbose.
func play(ctx context.Context, cfg config.Config, id string) {
	table, err := service.GetGame(id)
	if err != nil {
		log.Error(err)
		return
	}

	var afterTurn func(game.State)
	if cfg.Verbose {
		table.Game.Events().AddListener(msg.NewPrinter(color.Stdout))
		fmt.Fprintln(color.Stdout, table.Game.State())
		afterTurn = func(state game.State) {
			fmt.Fprintln(color.Stdout, state)
		}
	}

	result, err := table.Play(ctx, cfg.MaxTurns, afterTurn)
	if err != nil {
		log.Error(err)
		return
	}
	report(result)
}

func report(result service.Result) {
	if result.GameOver {
		fmt.Fprint(color.Stdout, msg.Message.WinnerFound(result.Winner))
	}
	log.Infof("game %s with %d players, %d turns: %s\n", result.ID, result.Players, result.Turns, result.State)
}
