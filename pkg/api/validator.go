package api

import (
	"errors"
	"math"
)

// Validator is implemented by payloads that check themselves after decoding.
type Validator interface {
	Validate() error
}

func (p PlayerSyncPayload) Validate() error {
	for _, v := range []float64{p.Position.X, p.Position.Y, p.Position.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("position must be finite")
		}
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.ItemID == "" {
		return errors.New("itemId is required")
	}
	if p.Count < 0 {
		return errors.New("count cannot be negative")
	}
	return nil
}

// Quantity is Count, defaulting to 1.
func (p ItemPayload) Quantity() int {
	if p.Count == 0 {
		return 1
	}
	return p.Count
}

func (p QuestPayload) Validate() error {
	if p.QuestID == "" {
		return errors.New("questId is required")
	}
	return nil
}

func (p DoorPayload) Validate() error {
	if p.DoorID == "" {
		return errors.New("doorId is required")
	}
	return nil
}

func (p CreaturePayload) Validate() error {
	if p.CreatureID == "" {
		return errors.New("creatureId is required")
	}
	return nil
}
