package domain

import "time"

// Player
const (
	PlayerMaxHP          = 100
	PlayerBaseAttack     = 15
	PlayerBaseDefense    = 5
	PlayerAttackCooldown = 500 * time.Millisecond
	PlayerAttackRange    = 2.5
	PlayerSpeed          = 5.0
)

// Interaction ranges
const (
	CaptureRange      = 3.0
	LootPickupRange   = 1.5
	PatrolArrivalDist = 0.5
)
