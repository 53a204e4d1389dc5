package domain

import (
	"ethereplodor-server/internal/core/types/enums"
	"math"
)

// ExpBase is the experience cost scale of the level curve.
const ExpBase = 100

// Stats is the six-value stat block of a creature.
type Stats struct {
	HP      int `json:"hp"`
	MaxHP   int `json:"maxHp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Speed   int `json:"speed"`
	Special int `json:"special"`
}

// Map applies fn to every stat.
func (s Stats) Map(fn func(int) int) Stats {
	return Stats{
		HP:      fn(s.HP),
		MaxHP:   fn(s.MaxHP),
		Attack:  fn(s.Attack),
		Defense: fn(s.Defense),
		Speed:   fn(s.Speed),
		Special: fn(s.Special),
	}
}

// LevelStats scales base stats by 1 + (level-1)*0.1, floored.
// Integer form of the same formula, free of float drift.
func LevelStats(base Stats, level int) Stats {
	if level < 1 {
		level = 1
	}
	return base.Map(func(v int) int { return v * (9 + level) / 10 })
}

// ExpRequired is floor(100 * level^exp) for the growth class.
func ExpRequired(level int, growth enums.GrowthRate) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(ExpBase * math.Pow(float64(level), growth.Exponent())))
}

type Ability struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Element  enums.Element `json:"type"`
	Power    int           `json:"power"`
	Accuracy int           `json:"accuracy"`
	PP       int           `json:"pp"`
	MaxPP    int           `json:"maxPp"`
}

// EvolutionData is present only on species that evolve.
type EvolutionData struct {
	TargetID string `json:"targetId"`
	Level    int    `json:"level"`
	Evolved  bool   `json:"evolved"`
}

// Creature is a wild or owned collectible. Wild creatures never deal damage.
type Creature struct {
	ID          string           `json:"id"`
	SpeciesID   string           `json:"speciesId"`
	Name        string           `json:"name"`
	Element     enums.Element    `json:"type"`
	Level       int              `json:"level"`
	BaseStats   Stats            `json:"baseStats"`
	Stats       Stats            `json:"stats"`
	CurrentHP   int              `json:"currentHp"`
	Experience  int              `json:"experience"`
	ExpToNext   int              `json:"expToNextLevel"`
	Growth      enums.GrowthRate `json:"growthRate"`
	CaptureRate float64          `json:"captureRate"`
	IsWild      bool             `json:"isWild"`
	Evolution   *EvolutionData   `json:"evolution,omitempty"`
	Abilities   []Ability        `json:"abilities,omitempty"`
	Pos         *Vec3            `json:"position,omitempty"`
}

// Clone deep-copies the creature, so snapshots never alias live state.
func (c *Creature) Clone() *Creature {
	if c == nil {
		return nil
	}
	out := *c
	if c.Evolution != nil {
		evo := *c.Evolution
		out.Evolution = &evo
	}
	if c.Abilities != nil {
		out.Abilities = append([]Ability(nil), c.Abilities...)
	}
	if c.Pos != nil {
		pos := *c.Pos
		out.Pos = &pos
	}
	return &out
}
