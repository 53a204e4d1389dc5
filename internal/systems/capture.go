package systems

import (
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"math"
	"math/rand"
)

// CaptureResult of one throw. Shakes (0-4) is cosmetic and independent of Success.
type CaptureResult struct {
	Success bool    `json:"success"`
	Shakes  int     `json:"shakes"`
	Chance  float64 `json:"chance"`
}

// CaptureResolver evaluates capture odds against wild creatures.
type CaptureResolver struct {
	rng *rand.Rand
}

func NewCaptureResolver(rng *rand.Rand) *CaptureResolver {
	return &CaptureResolver{rng: rng}
}

// Chance = ((3*maxHp - 2*hp) * captureRate * ball) / (3*maxHp) / max(1, level/10), clamped to [0,1].
func (c *CaptureResolver) Chance(creature *domain.Creature, ball enums.BallType) float64 {
	maxHP := float64(creature.Stats.MaxHP)
	if maxHP <= 0 {
		return 0
	}
	hp := math.Min(math.Max(float64(creature.CurrentHP), 0), maxHP)

	chance := ((3*maxHP - 2*hp) * creature.CaptureRate * ball.Modifier()) / (3 * maxHP)
	chance /= math.Max(1, float64(creature.Level)/10)

	return math.Min(1, math.Max(0, chance))
}

// Attempt rolls one throw. Non-wild creatures can never be captured.
func (c *CaptureResolver) Attempt(creature *domain.Creature, ball enums.BallType) CaptureResult {
	if !creature.IsWild {
		return CaptureResult{}
	}
	chance := c.Chance(creature, ball)
	return CaptureResult{
		Success: c.rng.Float64() < chance,
		Shakes:  int(math.Floor(chance * 4)),
		Chance:  chance,
	}
}
