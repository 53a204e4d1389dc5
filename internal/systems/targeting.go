package systems

import "ethereplodor-server/internal/domain"

// Nearest returns the candidate closest to origin within maxRange (inclusive).
// pos extracts the position; ok reports whether a candidate qualified.
func Nearest[T any](origin domain.Vec3, maxRange float64, candidates []T, pos func(T) (domain.Vec3, bool)) (best T, ok bool) {
	bestDist := maxRange
	for _, c := range candidates {
		p, valid := pos(c)
		if !valid {
			continue
		}
		if d := origin.DistanceTo(p); d <= bestDist {
			best, bestDist, ok = c, d, true
		}
	}
	return best, ok
}

// WithinRange keeps the candidates within maxRange of origin, preserving order.
func WithinRange[T any](origin domain.Vec3, maxRange float64, candidates []T, pos func(T) (domain.Vec3, bool)) []T {
	var out []T
	for _, c := range candidates {
		if p, valid := pos(c); valid && origin.DistanceTo(p) <= maxRange {
			out = append(out, c)
		}
	}
	return out
}

// EnemyPos positions live enemies only.
func EnemyPos(e *domain.Enemy) (domain.Vec3, bool) {
	if e == nil || e.IsDead() || e.HP <= 0 {
		return domain.Vec3{}, false
	}
	return e.Pos, true
}

// CreaturePos positions wild creatures that are placed in the world.
func CreaturePos(c *domain.Creature) (domain.Vec3, bool) {
	if c == nil || c.Pos == nil || !c.IsWild {
		return domain.Vec3{}, false
	}
	return *c.Pos, true
}

// DropPos positions loot drops.
func DropPos(d *domain.LootDrop) (domain.Vec3, bool) {
	if d == nil {
		return domain.Vec3{}, false
	}
	return d.Pos, true
}
