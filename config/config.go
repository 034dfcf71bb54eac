package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Hewlli/UNO-strategic-game/uno/game"
)

// Config drives a simulation run. Strategies assigns one strategy name per
// seat ("random", "rule", "predictive" or "human"); missing seats fall back
// to the rule-based bot.
type Config struct {
	Players    int      `yaml:"players"`
	Strategies []string `yaml:"strategies"`
	Seed       int64    `yaml:"seed"`
	Games      int      `yaml:"games"`
	LogDir     string   `yaml:"log_dir"`
}

func Default() Config {
	return Config{
		Players:    4,
		Strategies: []string{"rule", "predictive", "random", "rule"},
		Seed:       0,
		Games:      1,
		LogDir:     "data",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Players < game.MinPlayers || c.Players > game.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d, got %d", game.MinPlayers, game.MaxPlayers, c.Players)
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Games)
	}
	return nil
}

// normalize pads or trims the strategy list to the player count.
func (c *Config) normalize() {
	for len(c.Strategies) < c.Players {
		c.Strategies = append(c.Strategies, "rule")
	}
	c.Strategies = c.Strategies[:c.Players]
	if c.LogDir == "" {
		c.LogDir = "data"
	}
}
