package systems

import (
	"errors"
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"testing"
)

func testAreas() []domain.Area {
	return []domain.Area{
		{
			ID: "village", Name: "Village", Type: enums.AreaOutdoor,
			Doors: []domain.Door{{ID: "in", Position: domain.Vec3{X: 5}, TargetAreaID: "house", TargetSpawn: &domain.Vec3{Y: 1}, TriggerDistance: 2}},
		},
		{
			ID: "house", Name: "House", Type: enums.AreaIndoor, SpawnPoint: domain.Vec3{Z: 3},
			Doors: []domain.Door{
				{ID: "out", Position: domain.Vec3{Z: 2}, TargetAreaID: "village"},
				{ID: "broken", Position: domain.Vec3{Z: 2}, TargetAreaID: "nowhere"},
			},
		},
	}
}

func TestAreaMap_Enter(t *testing.T) {
	m := NewAreaMap(testAreas(), "village")

	tests := []struct {
		name    string
		door    string
		from    domain.Vec3
		wantErr error
		wantTo  string
		spawn   domain.Vec3
		first   bool
	}{
		{"unknown door", "out", domain.Vec3{X: 5}, ErrUnknownDoor, "village", domain.Vec3{}, false},
		{"too far", "in", domain.Vec3{X: 8}, ErrDoorOutOfReach, "village", domain.Vec3{}, false},
		{"enter house", "in", domain.Vec3{X: 4}, nil, "house", domain.Vec3{Y: 1}, true},
		{"dangling door", "broken", domain.Vec3{Z: 2}, ErrUnknownArea, "house", domain.Vec3{}, false},
		{"back outside", "out", domain.Vec3{Z: 1}, nil, "village", domain.Vec3{}, false},
		{"house again", "in", domain.Vec3{X: 5}, nil, "house", domain.Vec3{Y: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := m.Enter(tt.door, tt.from)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if m.Current().ID != tt.wantTo {
				t.Errorf("current = %s, want %s", m.Current().ID, tt.wantTo)
			}
			if err != nil {
				return
			}
			if tr.Spawn != tt.spawn || tr.FirstVisit != tt.first || tr.To.ID != tt.wantTo {
				t.Errorf("transition = %+v", tr)
			}
		})
	}
}

func TestAreaMap_DefaultDoorReach(t *testing.T) {
	m := NewAreaMap(testAreas(), "house")
	// "out" has no trigger distance: 2.0 applies.
	if _, err := m.Enter("out", domain.Vec3{Z: 4.1}); !errors.Is(err, ErrDoorOutOfReach) {
		t.Errorf("err = %v, want out of reach", err)
	}
	if _, err := m.Enter("out", domain.Vec3{Z: 4}); err != nil {
		t.Errorf("err = %v at exactly the default reach", err)
	}
}

func TestAreaMap_StartAndReset(t *testing.T) {
	m := NewAreaMap(testAreas(), "missing")
	if m.Current().ID != "village" || !m.Visited("village") || m.Visited("house") {
		t.Fatalf("unknown start must fall back to the first area, got %s", m.Current().ID)
	}

	m.Enter("in", domain.Vec3{X: 5})
	m.ReturnToStart()
	if m.Current().ID != "village" || !m.Visited("house") {
		t.Error("ReturnToStart must keep the visited set")
	}

	empty := NewAreaMap(nil, "")
	if !empty.Current().Type.Hostile() {
		t.Error("no areas means open terrain")
	}
}
