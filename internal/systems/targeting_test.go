package systems

import (
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"testing"
)

func TestNearestCreature(t *testing.T) {
	at := func(x float64) *domain.Vec3 { return &domain.Vec3{X: x} }
	creatures := []*domain.Creature{
		{ID: "far", IsWild: true, Pos: at(2.9)},
		{ID: "near", IsWild: true, Pos: at(1)},
		{ID: "owned", IsWild: false, Pos: at(0.5)},
		{ID: "outside", IsWild: true, Pos: at(3.5)},
	}

	got, ok := Nearest(domain.Vec3{}, domain.CaptureRange, creatures, CreaturePos)
	if !ok || got.ID != "near" {
		t.Errorf("Nearest = %v ok=%v, want near", got, ok)
	}

	if _, ok := Nearest(domain.Vec3{X: 100}, domain.CaptureRange, creatures, CreaturePos); ok {
		t.Error("nothing should be in range")
	}
}

func TestWithinRangeSkipsDead(t *testing.T) {
	enemies := []*domain.Enemy{
		{CombatEntity: domain.CombatEntity{ID: "a", HP: 5, Pos: domain.Vec3{X: 1}}},
		{CombatEntity: domain.CombatEntity{ID: "b", HP: 0, Pos: domain.Vec3{X: 1}}, State: enums.EnemyStateDead},
		{CombatEntity: domain.CombatEntity{ID: "c", HP: 5, Pos: domain.Vec3{X: 2.5}}},
		{CombatEntity: domain.CombatEntity{ID: "d", HP: 5, Pos: domain.Vec3{X: 9}}},
	}
	got := WithinRange(domain.Vec3{}, domain.PlayerAttackRange, enemies, EnemyPos)
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("WithinRange = %v", got)
	}
}
