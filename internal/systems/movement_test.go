package systems

import (
	"ethereplodor-server/internal/domain"
	"math"
	"testing"
)

func TestSteer(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.Vec3
		to      domain.Vec3
		step    float64
		want    domain.Vec3
		arrived bool
	}{
		{"partial step", domain.Vec3{}, domain.Vec3{X: 10}, 2, domain.Vec3{X: 2}, false},
		{"no overshoot", domain.Vec3{}, domain.Vec3{Z: 1}, 5, domain.Vec3{Z: 1}, true},
		{"zero step", domain.Vec3{X: 1}, domain.Vec3{X: 4}, 0, domain.Vec3{X: 1}, false},
		{"diagonal", domain.Vec3{}, domain.Vec3{X: 3, Z: 4}, 2.5, domain.Vec3{X: 1.5, Z: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Steer(tt.from, tt.to, tt.step)
			if got.Arrived != tt.arrived || got.Pos.DistanceTo(tt.want) > 1e-9 {
				t.Errorf("Steer = %+v, want %+v arrived=%v", got, tt.want, tt.arrived)
			}
			if d := got.Pos.DistanceTo(tt.from); d > math.Max(tt.step, 0)+1e-9 {
				t.Errorf("moved %v, more than step %v", d, tt.step)
			}
		})
	}
}
