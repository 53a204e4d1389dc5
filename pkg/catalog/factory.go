package catalog

import (
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"math/rand"
)

// NewEnemy builds a patrolling enemy at pos from its archetype.
func NewEnemy(arch EnemyArchetype, id string, pos domain.Vec3, level int) *domain.Enemy {
	return &domain.Enemy{
		CombatEntity: domain.CombatEntity{
			ID:      id,
			HP:      arch.HP,
			MaxHP:   arch.HP,
			Attack:  arch.Attack,
			Defense: arch.Defense,
			Pos:     pos,
		},
		Name:           arch.Name,
		Kind:           arch.Kind,
		Level:          level,
		State:          enums.EnemyStatePatrol,
		Speed:          arch.Speed,
		DetectionRange: arch.DetectionRange,
		AttackRange:    arch.AttackRange,
		AttackCooldown: arch.AttackCooldown(),
		Patrol:         &domain.PatrolBehavior{Radius: arch.PatrolRadius},
		SpawnOrigin:    pos,
	}
}

// NewWildCreature builds a wild creature of the species at the given level.
func NewWildCreature(sp Species, id string, pos domain.Vec3, level int) *domain.Creature {
	stats := domain.LevelStats(sp.BaseStats, level)
	p := pos

	c := &domain.Creature{
		ID:          id,
		SpeciesID:   sp.ID,
		Name:        sp.Name,
		Element:     sp.Element,
		Level:       level,
		BaseStats:   sp.BaseStats,
		Stats:       stats,
		CurrentHP:   stats.MaxHP,
		ExpToNext:   domain.ExpRequired(level+1, sp.Growth),
		Growth:      sp.Growth,
		CaptureRate: sp.CaptureRate,
		IsWild:      true,
		Abilities:   append([]domain.Ability(nil), sp.Abilities...),
		Pos:         &p,
	}
	if sp.Evolution != nil {
		evo := *sp.Evolution
		evo.Evolved = false
		c.Evolution = &evo
	}
	return c
}

// PickEnemy rolls an archetype by weight. An empty list gives ok=false.
func PickEnemy(kinds []EnemyArchetype, rng *rand.Rand) (EnemyArchetype, bool) {
	total := 0.0
	for _, s := range kinds {
		total += s.Weight
	}
	if len(kinds) == 0 {
		return EnemyArchetype{}, false
	}
	if total <= 0 {
		return kinds[rng.Intn(len(kinds))], true
	}

	roll := rng.Float64() * total
	for _, s := range kinds {
		roll -= s.Weight
		if roll < 0 {
			return s, true
		}
	}
	return kinds[len(kinds)-1], true
}
