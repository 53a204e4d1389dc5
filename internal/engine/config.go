package engine

import (
	"ethereplodor-server/internal/systems"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the simulation start parameters.
type Config struct {
	// Seed drives every gameplay roll. 0 means "pick from the clock".
	Seed         int64         `env:"SIM_SEED"`
	Tick         time.Duration `env:"SIM_TICK"`
	Port         string        `env:"SIM_PORT"`
	CorpseLinger time.Duration `env:"SIM_CORPSE_LINGER"`
	// StartArea is the area the player starts and respawns in.
	StartArea string `env:"SIM_START_AREA"`
	// Admin registers the ADMIN_* debug commands.
	Admin bool `env:"SIM_ADMIN"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Enemies systems.SpawnerConfig `envPrefix:"ENEMY_"`
	Wild    systems.SpawnerConfig `envPrefix:"WILD_"`

	// StartingGold and StartingItems seed the player's inventory.
	StartingGold  int            `env:"SIM_STARTING_GOLD"`
	StartingItems map[string]int `env:"SIM_STARTING_ITEMS"`
}

// NewConfig returns the defaults.
func NewConfig() Config {
	return Config{
		Seed:         0,
		Tick:         50 * time.Millisecond,
		Port:         "8080",
		CorpseLinger: 3 * time.Second,
		StartArea:    "outdoor",
		LogLevel:     "info",
		Enemies: systems.SpawnerConfig{
			Max:         20,
			Cooldown:    3 * time.Second,
			MinDistance: 15,
			Chance:      0.3,
			RingRadius:  20,
			RingPoints:  8,
			RingJitter:  5,
			LevelMin:    1,
			LevelMax:    5,
		},
		Wild: systems.SpawnerConfig{
			Max:         5,
			Cooldown:    5 * time.Second,
			MinDistance: 10,
			Chance:      0.4,
			RingRadius:  25,
			RingPoints:  6,
			RingJitter:  5,
			LevelMin:    1,
			LevelMax:    10,
		},
		StartingGold: 100,
		StartingItems: map[string]int{
			"potion_health": 3,
			"ball_super":    2,
		},
	}
}

// LoadConfig applies environment overrides on top of the defaults.
func LoadConfig() (Config, error) {
	cfg := NewConfig()
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
