package utils

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// GenerateID returns a random uuid (v4) string.
func GenerateID() string {
	return uuid.NewString()
}

// GenerateDeterministicID mints a uuid from rng so seeded runs produce the same ids.
func GenerateDeterministicID(rng *rand.Rand, prefix string) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// *rand.Rand.Read never fails, keep the fallback anyway.
		return prefix + uuid.NewString()
	}
	return prefix + id.String()
}

// Dice holds the two random streams of a simulation.
// Gameplay drives anything testable (damage, capture, loot, spawning),
// Cosmetic only drives visual jitter.
type Dice struct {
	Gameplay *rand.Rand
	Cosmetic *rand.Rand
}

// NewDice seeds both streams from one seed. Zero means "use the clock".
func NewDice(seed int64) Dice {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return Dice{
		Gameplay: rand.New(rand.NewSource(seed)),
		Cosmetic: rand.New(rand.NewSource(seed ^ 0x5DEECE66D)),
	}
}
