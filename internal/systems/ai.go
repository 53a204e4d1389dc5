package systems

import (
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"math"
	"math/rand"
	"time"
)

// AI tuning.
const (
	IdleToPatrolChance = 0.01 // per tick
	ChaseExitFactor    = 1.5  // leave chase beyond 1.5x detection range
	PatrolSpeedFactor  = 0.5
)

// AttackOutcome is a damage result aimed at the player. Lethal is a hint for
// the caller; the AI never touches the player's health.
type AttackOutcome struct {
	DamageResult
	Lethal bool `json:"lethal"`
}

// EnemyAI drives one enemy: idle/patrol/chase/attack/dead.
type EnemyAI struct {
	enemy  *domain.Enemy
	player domain.CombatEntity
	combat *CombatResolver
	rng    *rand.Rand
}

func NewEnemyAI(enemy *domain.Enemy, combat *CombatResolver, rng *rand.Rand) *EnemyAI {
	return &EnemyAI{enemy: enemy, combat: combat, rng: rng}
}

func (ai *EnemyAI) Enemy() *domain.Enemy { return ai.enemy }

// UpdatePlayer re-points the AI at this tick's player snapshot.
func (ai *EnemyAI) UpdatePlayer(player domain.CombatEntity) {
	ai.player = player
}

// Update runs one state-machine step with dt seconds of movement.
func (ai *EnemyAI) Update(dt float64) {
	e := ai.enemy
	if e.IsDead() {
		return
	}
	if e.HP <= 0 {
		e.State = enums.EnemyStateDead
		return
	}

	dist := e.Pos.DistanceTo(ai.player.Pos)

	switch e.State {
	case enums.EnemyStateIdle:
		if ai.rng.Float64() < IdleToPatrolChance {
			e.State = enums.EnemyStatePatrol
			ai.pickPatrolTarget()
		}

	case enums.EnemyStatePatrol:
		switch {
		case dist < e.DetectionRange:
			e.State = enums.EnemyStateChase
		case e.Patrol == nil:
			// No patrol behavior: hold position.
		case e.Patrol.Target == nil:
			ai.pickPatrolTarget()
		default:
			e.Pos = Steer(e.Pos, *e.Patrol.Target, e.Speed*PatrolSpeedFactor*dt).Pos
			if e.Pos.DistanceTo(*e.Patrol.Target) < domain.PatrolArrivalDist {
				ai.pickPatrolTarget()
			}
		}

	case enums.EnemyStateChase:
		switch {
		case dist > e.DetectionRange*ChaseExitFactor:
			e.State = enums.EnemyStatePatrol
			ai.pickPatrolTarget()
		case dist < e.AttackRange:
			e.State = enums.EnemyStateAttack
		default:
			e.Pos = Steer(e.Pos, ai.player.Pos, e.Speed*dt).Pos
		}

	case enums.EnemyStateAttack:
		if dist > e.AttackRange {
			e.State = enums.EnemyStateChase
		}
	}
}

// AttackResult produces an attack when in attack state, the player is in range
// and the cooldown has elapsed. It stamps LastAttack; applying damage is up to the caller.
func (ai *EnemyAI) AttackResult(now time.Time) (AttackOutcome, bool) {
	e := ai.enemy
	if e.State != enums.EnemyStateAttack || !CanAttack(&e.CombatEntity, &ai.player, e.AttackRange) {
		return AttackOutcome{}, false
	}
	if !e.LastAttack.IsZero() && now.Sub(e.LastAttack) < e.AttackCooldown {
		return AttackOutcome{}, false
	}

	res := ai.combat.ResolveDamage(&e.CombatEntity, &ai.player)
	e.LastAttack = now
	return AttackOutcome{
		DamageResult: res,
		Lethal:       ai.player.HP-res.Damage <= 0,
	}, true
}

func (ai *EnemyAI) pickPatrolTarget() {
	e := ai.enemy
	if e.Patrol == nil {
		return
	}
	angle := ai.rng.Float64() * 2 * math.Pi
	dist := ai.rng.Float64() * e.Patrol.Radius
	e.Patrol.Target = &domain.Vec3{
		X: e.SpawnOrigin.X + math.Cos(angle)*dist,
		Y: e.SpawnOrigin.Y,
		Z: e.SpawnOrigin.Z + math.Sin(angle)*dist,
	}
}
