package domain

import "ethereplodor-server/internal/core/types/enums"

// DefaultDoorReach applies to doors without a trigger distance.
const DefaultDoorReach = 2.0

// Door links an area to another one.
type Door struct {
	ID              string  `json:"id"`
	Position        Vec3    `json:"position"`
	TargetAreaID    string  `json:"targetAreaId"`
	TargetSpawn     *Vec3   `json:"targetSpawn,omitempty"` // Target area spawn point when nil
	TriggerDistance float64 `json:"triggerDistance,omitempty"`
	Prompt          string  `json:"prompt,omitempty"`
}

// Reach is the distance from which the door can be used.
func (d Door) Reach() float64 {
	if d.TriggerDistance <= 0 {
		return DefaultDoorReach
	}
	return d.TriggerDistance
}

// Area is one discrete location: the village outside, a house interior...
type Area struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       enums.AreaType `json:"type"`
	SpawnPoint Vec3           `json:"spawnPoint"`
	Doors      []Door         `json:"doors,omitempty"`
}

func (a Area) Door(id string) (Door, bool) {
	for _, d := range a.Doors {
		if d.ID == id {
			return d, true
		}
	}
	return Door{}, false
}

func (a Area) Clone() Area {
	out := a
	out.Doors = make([]Door, len(a.Doors))
	for i, d := range a.Doors {
		out.Doors[i] = d
		if d.TargetSpawn != nil {
			spawn := *d.TargetSpawn
			out.Doors[i].TargetSpawn = &spawn
		}
	}
	return out
}
