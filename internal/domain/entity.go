package domain

import (
	"ethereplodor-server/internal/core/types/enums"
	"time"
)

// PatrolBehavior is the wandering sub-record of an enemy.
type PatrolBehavior struct {
	Radius float64 `json:"radius"`
	Target *Vec3   `json:"target,omitempty"`
}

// Enemy is a hostile entity. It never gets captured.
type Enemy struct {
	CombatEntity

	Name           string           `json:"name"`
	Kind           enums.EnemyKind  `json:"kind"`
	Level          int              `json:"level"`
	State          enums.EnemyState `json:"state"`
	Speed          float64          `json:"speed"`
	DetectionRange float64          `json:"detectionRange"`
	AttackRange    float64          `json:"attackRange"`
	AttackCooldown time.Duration    `json:"attackCooldown"`
	LastAttack     time.Time        `json:"lastAttack"`
	Patrol         *PatrolBehavior  `json:"patrol,omitempty"`
	SpawnOrigin    Vec3             `json:"spawnOrigin"`
	DiedAt         time.Time        `json:"diedAt"`
}

// IsDead reports the terminal state.
func (e *Enemy) IsDead() bool {
	return e.State == enums.EnemyStateDead
}

// MarkDead flags the enemy as dead. Returns false if it already was.
func (e *Enemy) MarkDead(now time.Time) bool {
	if e.IsDead() {
		return false
	}
	e.HP = 0
	e.State = enums.EnemyStateDead
	e.DiedAt = now
	if e.Patrol != nil {
		e.Patrol.Target = nil
	}
	return true
}
