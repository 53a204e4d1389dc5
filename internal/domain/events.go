package domain

import "ethereplodor-server/internal/core/types/enums"

// GameEvent is a fire-and-forget notification consumed by the quest tracker.
// Type reuses the objective vocabulary so matching is a plain comparison.
type GameEvent struct {
	Type     enums.ObjectiveType `json:"type"`
	TargetID string              `json:"targetId,omitempty"`
	Amount   int                 `json:"amount"`
}

// EnemyKilled is keyed by enemy kind ("basic", "tank"...).
func EnemyKilled(kind enums.EnemyKind) GameEvent {
	return GameEvent{Type: enums.ObjectiveKillEnemies, TargetID: kind.String(), Amount: 1}
}

// CreatureCaptured is keyed by species id.
func CreatureCaptured(speciesID string) GameEvent {
	return GameEvent{Type: enums.ObjectiveCaptureCreatures, TargetID: speciesID, Amount: 1}
}

func ItemCollected(itemID string, quantity int) GameEvent {
	return GameEvent{Type: enums.ObjectiveCollectItems, TargetID: itemID, Amount: quantity}
}

// CreatureLeveled carries the number of levels gained.
func CreatureLeveled(speciesID string, levels int) GameEvent {
	return GameEvent{Type: enums.ObjectiveReachLevel, TargetID: speciesID, Amount: levels}
}

func AreaExplored(areaID string) GameEvent {
	return GameEvent{Type: enums.ObjectiveExploreArea, TargetID: areaID, Amount: 1}
}
