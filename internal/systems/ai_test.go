package systems

import (
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"math/rand"
	"testing"
	"time"
)

const tick = 0.05

func newEnemy(state enums.EnemyState, speed float64) *domain.Enemy {
	return &domain.Enemy{
		CombatEntity:   domain.CombatEntity{ID: "e1", HP: 50, MaxHP: 50, Attack: 10, Defense: 5},
		State:          state,
		Speed:          speed,
		DetectionRange: 8,
		AttackRange:    2,
		AttackCooldown: 1500 * time.Millisecond,
		Patrol:         &domain.PatrolBehavior{Radius: 5},
	}
}

func newAI(e *domain.Enemy, seed int64) *EnemyAI {
	rng := rand.New(rand.NewSource(seed))
	return NewEnemyAI(e, NewCombatResolver(rng), rng)
}

func playerAt(x float64) domain.CombatEntity {
	return domain.CombatEntity{ID: "player", HP: 100, MaxHP: 100, Attack: 15, Defense: 5, Pos: domain.Vec3{X: x}}
}

func TestEnemyAI_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    enums.EnemyState
		playerX float64
		want    enums.EnemyState
	}{
		{"patrol detects", enums.EnemyStatePatrol, 7.9, enums.EnemyStateChase},
		{"patrol ignores distant", enums.EnemyStatePatrol, 8, enums.EnemyStatePatrol},
		{"chase inside band", enums.EnemyStateChase, 11.9, enums.EnemyStateChase},
		{"chase gives up", enums.EnemyStateChase, 12.1, enums.EnemyStatePatrol},
		{"chase reaches", enums.EnemyStateChase, 1.9, enums.EnemyStateAttack},
		{"attack holds", enums.EnemyStateAttack, 2, enums.EnemyStateAttack},
		{"attack loses", enums.EnemyStateAttack, 2.1, enums.EnemyStateChase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnemy(tt.from, 0)
			ai := newAI(e, 1)
			ai.UpdatePlayer(playerAt(tt.playerX))
			ai.Update(tick)
			if e.State != tt.want {
				t.Errorf("state = %s, want %s", e.State, tt.want)
			}
		})
	}
}

func TestEnemyAI_Hysteresis(t *testing.T) {
	e := newEnemy(enums.EnemyStateChase, 0)
	ai := newAI(e, 2)

	// Beyond 1.5x detection: back to patrol on the next update.
	ai.UpdatePlayer(playerAt(13))
	ai.Update(tick)
	if e.State != enums.EnemyStatePatrol {
		t.Fatalf("state = %s, want patrol", e.State)
	}

	// Back inside the band but never within detection: no chase.
	for i := 0; i < 500; i++ {
		x := 9 + float64(i%30)/10 // 9.0 .. 11.9
		ai.UpdatePlayer(domain.CombatEntity{HP: 100, Pos: e.Pos.Add(domain.Vec3{X: x})})
		ai.Update(tick)
		if e.State != enums.EnemyStatePatrol {
			t.Fatalf("tick %d: re-entered %s at distance %v", i, e.State, x)
		}
	}

	// Crossing the detection range again is what re-arms the chase.
	ai.UpdatePlayer(domain.CombatEntity{HP: 100, Pos: e.Pos.Add(domain.Vec3{X: 7})})
	ai.Update(tick)
	if e.State != enums.EnemyStateChase {
		t.Errorf("state = %s, want chase", e.State)
	}
}

func TestEnemyAI_FarPlayerKeepsPatrolling(t *testing.T) {
	e := newEnemy(enums.EnemyStateChase, 2)
	ai := newAI(e, 3)
	ai.UpdatePlayer(playerAt(500))

	for i := 0; i < 2000; i++ {
		ai.Update(tick)
		if i > 0 && e.State != enums.EnemyStatePatrol {
			t.Fatalf("tick %d: state %s", i, e.State)
		}
		if e.Pos.DistanceTo(e.SpawnOrigin) > e.Patrol.Radius+1e-9 {
			t.Fatalf("wandered %v from spawn", e.Pos.DistanceTo(e.SpawnOrigin))
		}
	}
}

func TestEnemyAI_ChaseMovesTowardPlayer(t *testing.T) {
	e := newEnemy(enums.EnemyStateChase, 4)
	ai := newAI(e, 4)
	ai.UpdatePlayer(playerAt(6))

	ai.Update(0.5)
	if e.Pos.X <= 1.99 || e.Pos.X >= 2.01 {
		t.Errorf("x = %v, want 2 (speed 4 * 0.5s)", e.Pos.X)
	}
}

func TestEnemyAI_IdleLeavesEventually(t *testing.T) {
	e := newEnemy(enums.EnemyStateIdle, 1)
	ai := newAI(e, 5)
	ai.UpdatePlayer(playerAt(100))

	for i := 0; i < 5000 && e.State == enums.EnemyStateIdle; i++ {
		ai.Update(tick)
	}
	if e.State != enums.EnemyStatePatrol || e.Patrol.Target == nil {
		t.Errorf("state %s target %v", e.State, e.Patrol.Target)
	}
}

func TestEnemyAI_AttackCooldown(t *testing.T) {
	e := newEnemy(enums.EnemyStateAttack, 0)
	ai := newAI(e, 6)
	ai.UpdatePlayer(playerAt(1))
	now := time.Unix(1000, 0)

	first, ok := ai.AttackResult(now)
	if !ok || first.Damage < 1 {
		t.Fatalf("first attack = %+v ok=%v", first, ok)
	}
	if !e.LastAttack.Equal(now) {
		t.Error("LastAttack not stamped")
	}
	if _, ok := ai.AttackResult(now.Add(1499 * time.Millisecond)); ok {
		t.Error("attack inside cooldown")
	}
	if _, ok := ai.AttackResult(now.Add(1500 * time.Millisecond)); !ok {
		t.Error("attack after cooldown refused")
	}

	// Out of range: no attack even off cooldown.
	ai.UpdatePlayer(playerAt(5))
	if _, ok := ai.AttackResult(now.Add(time.Hour)); ok {
		t.Error("attack out of range")
	}
}

func TestEnemyAI_AttackOnlyInAttackState(t *testing.T) {
	e := newEnemy(enums.EnemyStateChase, 0)
	ai := newAI(e, 7)
	ai.UpdatePlayer(playerAt(1))
	if _, ok := ai.AttackResult(time.Unix(10, 0)); ok {
		t.Error("chasing enemy attacked")
	}
}

func TestEnemyAI_LethalHint(t *testing.T) {
	e := newEnemy(enums.EnemyStateAttack, 0)
	ai := newAI(e, 8)
	p := playerAt(1)
	p.HP = 1
	ai.UpdatePlayer(p)

	res, ok := ai.AttackResult(time.Unix(10, 0))
	if !ok || !res.Lethal {
		t.Errorf("result = %+v", res)
	}
}

func TestEnemyAI_DeadIsTerminal(t *testing.T) {
	e := newEnemy(enums.EnemyStateAttack, 3)
	ai := newAI(e, 9)
	ai.UpdatePlayer(playerAt(1))

	e.TakeDamage(999)
	ai.Update(tick)
	if e.State != enums.EnemyStateDead {
		t.Fatalf("state %s", e.State)
	}

	pos := e.Pos
	for i := 0; i < 10; i++ {
		ai.Update(tick)
	}
	if e.State != enums.EnemyStateDead || e.Pos != pos {
		t.Error("dead enemy kept acting")
	}
	if _, ok := ai.AttackResult(time.Unix(99, 0)); ok {
		t.Error("dead enemy attacked")
	}
}
