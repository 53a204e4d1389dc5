package engine

import (
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/internal/systems"
	"ethereplodor-server/pkg/catalog"
	"ethereplodor-server/pkg/utils"
	"math/rand"
)

// enemyPopulation feeds the hostile spawner. Corpses count until removed.
type enemyPopulation struct {
	sim *Simulation
}

func (p enemyPopulation) Count() int {
	return p.sim.enemies.Len()
}

// Spawn rolls the archetype by weight and registers the enemy with its AI.
func (p enemyPopulation) Spawn(pos domain.Vec3, level int, rng *rand.Rand) (string, bool) {
	arch, ok := catalog.PickEnemy(p.sim.cat.Enemies, rng)
	if !ok {
		return "", false
	}
	enemy := catalog.NewEnemy(arch, utils.GenerateDeterministicID(rng, "enemy_"), pos, level)
	if !p.sim.addEnemy(enemy) {
		return "", false
	}
	return enemy.ID, true
}

// wildPopulation feeds the creature spawner with a uniform species roll.
type wildPopulation struct {
	sim *Simulation
}

func (p wildPopulation) Count() int {
	return p.sim.wild.Len()
}

func (p wildPopulation) Spawn(pos domain.Vec3, level int, rng *rand.Rand) (string, bool) {
	species := p.sim.cat.Species
	if len(species) == 0 {
		return "", false
	}
	sp := species[rng.Intn(len(species))]
	c := catalog.NewWildCreature(sp, utils.GenerateDeterministicID(rng, "wild_"), pos, level)
	if !p.sim.wild.Add(c.ID, c) {
		return "", false
	}
	return c.ID, true
}

// addEnemy registers the entity and its brain together.
func (s *Simulation) addEnemy(e *domain.Enemy) bool {
	if !s.enemies.Add(e.ID, e) {
		return false
	}
	s.brains[e.ID] = systems.NewEnemyAI(e, s.combat, s.dice.Gameplay)
	return true
}

// removeEnemy drops the entity, its brain and any pending corpse timer.
func (s *Simulation) removeEnemy(id string) bool {
	if !s.enemies.Remove(id) {
		return false
	}
	delete(s.brains, id)
	s.corpses.Cancel(id)
	return true
}
