package systems

import "ethereplodor-server/internal/domain"

// MovementResult of one steering step.
type MovementResult struct {
	Pos     domain.Vec3
	Arrived bool // the step reached the target instead of stopping short
}

// Steer moves from pos toward target by at most step, never overshooting.
// Does not mutate anything.
func Steer(pos, target domain.Vec3, step float64) MovementResult {
	if step <= 0 {
		return MovementResult{Pos: pos, Arrived: pos == target}
	}
	delta := target.Sub(pos)
	dist := delta.Length()
	if dist <= step {
		return MovementResult{Pos: target, Arrived: true}
	}
	return MovementResult{Pos: pos.Add(delta.Scale(step / dist))}
}
