package systems

import (
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Evolution scales base stats by 12/10.
const (
	evolutionNum = 12
	evolutionDen = 10
)

// LevelUpResult of one experience award.
type LevelUpResult struct {
	LeveledUp    bool `json:"leveledUp"`
	NewLevel     int  `json:"newLevel"`
	Evolved      bool `json:"evolved"`
	LevelsGained int  `json:"levelsGained"`
}

// SpeciesNamer resolves the display name of an evolution target.
type SpeciesNamer interface {
	SpeciesName(id string) (string, bool)
}

// ProgressionEngine owns the experience curve, level-ups and evolution.
type ProgressionEngine struct {
	names SpeciesNamer
}

// NewProgressionEngine accepts a nil namer; evolved creatures then keep their name.
func NewProgressionEngine(names SpeciesNamer) *ProgressionEngine {
	return &ProgressionEngine{names: names}
}

// AwardExperience adds amount and levels up as many times as it pays for.
// A zero or negative award changes nothing.
func (p *ProgressionEngine) AwardExperience(c *domain.Creature, amount int) LevelUpResult {
	res := LevelUpResult{NewLevel: c.Level}
	if amount <= 0 {
		return res
	}

	if c.ExpToNext <= 0 {
		c.ExpToNext = domain.ExpRequired(c.Level+1, c.Growth)
	}
	c.Experience += amount

	for c.Experience >= c.ExpToNext {
		c.Experience -= c.ExpToNext
		c.Level++
		res.LevelsGained++
		c.ExpToNext = domain.ExpRequired(c.Level+1, c.Growth)
		p.recalculate(c)
	}

	res.NewLevel = c.Level
	res.LeveledUp = res.LevelsGained > 0

	// Evolution only fires on an award that crossed a level.
	if res.LeveledUp && p.CanEvolve(c) {
		res.Evolved = p.Evolve(c)
	}

	if res.LeveledUp {
		logger.Component("progression").WithFields(logrus.Fields{
			"creature_id": c.ID,
			"level":       c.Level,
			"gained":      res.LevelsGained,
			"evolved":     res.Evolved,
		}).Debug("Creature leveled up")
	}
	return res
}

// CalculateStats returns the level-scaled stat block.
func (p *ProgressionEngine) CalculateStats(base domain.Stats, level int) domain.Stats {
	return domain.LevelStats(base, level)
}

// CanEvolve: an evolution path, not taken yet, and the level reached.
func (p *ProgressionEngine) CanEvolve(c *domain.Creature) bool {
	evo := c.Evolution
	return evo != nil && !evo.Evolved && c.Level >= evo.Level
}

// Evolve boosts base stats, recomputes, fully heals and marks the creature evolved.
// Returns false if the creature cannot evolve or already did.
func (p *ProgressionEngine) Evolve(c *domain.Creature) bool {
	evo := c.Evolution
	if evo == nil || evo.Evolved {
		return false
	}

	c.BaseStats = c.BaseStats.Map(func(v int) int { return v * evolutionNum / evolutionDen })
	p.recalculate(c)
	evo.Evolved = true

	if p.names != nil {
		if name, ok := p.names.SpeciesName(evo.TargetID); ok {
			c.SpeciesID = evo.TargetID
			c.Name = name
		}
	}
	return true
}

func (p *ProgressionEngine) recalculate(c *domain.Creature) {
	c.Stats = domain.LevelStats(c.BaseStats, c.Level)
	c.CurrentHP = c.Stats.MaxHP
}
