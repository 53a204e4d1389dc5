package systems

import (
	"errors"
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownDoor    = errors.New("no such door in this area")
	ErrDoorOutOfReach = errors.New("door out of reach")
	ErrUnknownArea    = errors.New("door leads to an unknown area")
)

// Transition is one door crossing.
type Transition struct {
	From       domain.Area
	To         domain.Area
	Spawn      domain.Vec3
	FirstVisit bool
}

// AreaMap knows which area the player is in and which ones were visited.
type AreaMap struct {
	areas   map[string]domain.Area
	start   string
	current string
	visited map[string]bool
	log     *logrus.Entry
}

// NewAreaMap starts in start, or in the first area when start is unknown.
// With no areas at all the player stays in an unnamed outdoor area.
func NewAreaMap(areas []domain.Area, start string) *AreaMap {
	m := &AreaMap{
		areas:   make(map[string]domain.Area, len(areas)),
		visited: make(map[string]bool),
		log:     logger.Component("areas"),
	}
	for _, a := range areas {
		m.areas[a.ID] = a.Clone()
	}
	if _, ok := m.areas[start]; !ok && len(areas) > 0 {
		start = areas[0].ID
	}
	m.start, m.current = start, start
	m.visited[start] = true
	return m
}

// Current returns a copy of the area the player is in.
func (m *AreaMap) Current() domain.Area {
	a, ok := m.areas[m.current]
	if !ok {
		return domain.Area{ID: m.current}
	}
	return a.Clone()
}

func (m *AreaMap) Visited(id string) bool {
	return m.visited[id]
}

// Enter walks through doorID of the current area, standing at from.
func (m *AreaMap) Enter(doorID string, from domain.Vec3) (Transition, error) {
	here := m.Current()

	// 1. Door of this area, within reach
	door, ok := here.Door(doorID)
	if !ok {
		return Transition{}, ErrUnknownDoor
	}
	if from.DistanceTo(door.Position) > door.Reach() {
		return Transition{}, ErrDoorOutOfReach
	}

	// 2. Target area and landing spot
	target, ok := m.areas[door.TargetAreaID]
	if !ok {
		return Transition{}, ErrUnknownArea
	}
	spawn := target.SpawnPoint
	if door.TargetSpawn != nil {
		spawn = *door.TargetSpawn
	}

	// 3. Move
	first := !m.visited[target.ID]
	m.visited[target.ID] = true
	m.current = target.ID

	m.log.WithFields(logrus.Fields{
		"from":        here.ID,
		"to":          target.ID,
		"door":        doorID,
		"first_visit": first,
	}).Info("Area transition")

	return Transition{From: here, To: target.Clone(), Spawn: spawn, FirstVisit: first}, nil
}

// ReturnToStart puts the player back in the starting area, on respawn.
func (m *AreaMap) ReturnToStart() {
	m.current = m.start
}
