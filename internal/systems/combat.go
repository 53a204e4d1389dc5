package systems

import (
	"ethereplodor-server/internal/domain"
	"math"
	"math/rand"
)

// Critical hits use one pair of constants for every call site.
const (
	DefaultCritChance     = 0.10
	DefaultCritMultiplier = 1.5
	DefaultVarianceMin    = 0.9
	DefaultVarianceMax    = 1.1
)

// DamageResult is the outcome of one attack. IsCritical is feedback only.
type DamageResult struct {
	Damage     int  `json:"damage"`
	IsCritical bool `json:"isCritical"`
}

// CombatResolver evaluates the damage formula. It holds no game state,
// only its random stream and tuning.
type CombatResolver struct {
	rng *rand.Rand

	CritChance     float64
	CritMultiplier float64
	VarianceMin    float64
	VarianceMax    float64
}

func NewCombatResolver(rng *rand.Rand) *CombatResolver {
	return &CombatResolver{
		rng:            rng,
		CritChance:     DefaultCritChance,
		CritMultiplier: DefaultCritMultiplier,
		VarianceMin:    DefaultVarianceMin,
		VarianceMax:    DefaultVarianceMax,
	}
}

// BaseDamage is attack - defense/2, never below 1.
func BaseDamage(attack, defense int) float64 {
	return math.Max(1, float64(attack)-float64(defense)/2)
}

// ResolveDamage rolls variance then crit. The result is always >= 1.
func (c *CombatResolver) ResolveDamage(attacker, defender *domain.CombatEntity) DamageResult {
	// 1. Base
	dmg := BaseDamage(attacker.Attack, defender.Defense)

	// 2. Variance, uniform in [min, max]
	dmg *= c.VarianceMin + c.rng.Float64()*(c.VarianceMax-c.VarianceMin)

	// 3. Crit
	crit := c.rng.Float64() < c.CritChance
	if crit {
		dmg *= c.CritMultiplier
	}

	return DamageResult{
		Damage:     max(1, int(math.Round(dmg))),
		IsCritical: crit,
	}
}

// CanAttack: target alive and within range (inclusive).
func CanAttack(attacker, target *domain.CombatEntity, attackRange float64) bool {
	if target.HP <= 0 {
		return false
	}
	return attacker.Pos.DistanceTo(target.Pos) <= attackRange
}

// ApplyDamage mutates hp and returns the death signal.
func ApplyDamage(target *domain.CombatEntity, damage int) bool {
	return target.TakeDamage(damage)
}
