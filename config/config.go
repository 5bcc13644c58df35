package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

type Config struct {
	Players  int    `env:"UNO_PLAYERS,default=2"`
	Seed     int64  `env:"UNO_SEED,default=1234"`
	MaxTurns int    `env:"UNO_MAX_TURNS,default=500"`
	Games    int    `env:"UNO_GAMES,default=1"`
	Color    bool   `env:"UNO_COLOR,default=true"`
	Verbose  bool   `env:"UNO_VERBOSE,default=false"`
	Policy   string `env:"UNO_POLICY,default=priority"`
}

// Load reads the environment, after merging in envFiles that exist.
// Variables already set in the environment win over the files.
func Load(envFiles ...string) (Config, error) {
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var c Config
	if err := envdecode.Decode(&c); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("%w %v", consts.ErrorsConfigInvalid, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.Players < consts.MinPlayers:
		return fmt.Errorf("%w UNO_PLAYERS must be at least %d, got %d", consts.ErrorsConfigInvalid, consts.MinPlayers, c.Players)
	case c.MaxTurns <= 0:
		return fmt.Errorf("%w UNO_MAX_TURNS must be positive, got %d", consts.ErrorsConfigInvalid, c.MaxTurns)
	case c.Games <= 0:
		return fmt.Errorf("%w UNO_GAMES must be positive, got %d", consts.ErrorsConfigInvalid, c.Games)
	}
	if _, err := game.PolicyByName(c.Policy); err != nil {
		return fmt.Errorf("%w %v", consts.ErrorsConfigInvalid, err)
	}
	return nil
}

// Options turns the configuration of the i-th game into engine options.
// Each game gets its own seed so batches do not replay one deal.
func (c Config) Options(i int) []game.Option {
	policy, _ := game.PolicyByName(c.Policy)
	return []game.Option{
		game.WithSeed(c.Seed + int64(i)),
		game.WithPolicy(policy),
	}
}
