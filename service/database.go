package service

import (
	"sort"
	"sync"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

var tables = hashmap.New()

// Table is a registered game. Turns are played while holding its lock.
type Table struct {
	sync.Mutex
	ID        string
	Players   int
	CreatedAt time.Time
	Turns     int
	Game      *game.Game
}

// CreateGame registers and initializes a new game.
func CreateGame(numPlayers int, opts ...game.Option) (*Table, error) {
	g, err := game.New(numPlayers, opts...)
	if err != nil {
		return nil, err
	}
	g.Initialize()
	table := &Table{
		ID:        uuid.NewString(),
		Players:   numPlayers,
		CreatedAt: time.Now(),
		Game:      g,
	}
	tables.Set(table.ID, table)
	log.Infof("game %s created for %d players\n", table.ID, numPlayers)
	return table, nil
}

func GetGame(id string) (*Table, error) {
	if v, ok := tables.Get(id); ok {
		return v.(*Table), nil
	}
	return nil, consts.ErrorsGameNotFound
}

// GetGames lists registered games, oldest first.
func GetGames() []*Table {
	list := make([]*Table, 0)
	tables.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Table))
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

func DeleteGame(id string) {
	tables.Del(id)
}
