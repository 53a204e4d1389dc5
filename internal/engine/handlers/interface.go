package handlers

import (
	"encoding/json"
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/internal/systems"
	"math/rand"
	"time"
)

// Log types of a Result.
const (
	MsgInfo   = "INFO"
	MsgCombat = "COMBAT"
	MsgLoot   = "LOOT"
	MsgQuest  = "QUEST"
	MsgError  = "ERROR"
)

// Context hands a handler the simulation state it may mutate.
// Everything here is owned by the simulation and only touched from its goroutine.
type Context struct {
	Now     time.Time
	Player  domain.Player
	Enemies *domain.Registry[*domain.Enemy]
	Wild    *domain.Registry[*domain.Creature]

	Combat  *systems.CombatResolver
	Capture *systems.CaptureResolver
	Levels  *systems.ProgressionEngine
	Quests  *systems.QuestTracker
	Shop    *systems.Shop
	Rewards systems.RewardSink
	Strike  *systems.Cooldown
	Areas   *systems.AreaMap

	Rng *rand.Rand
}

// Result is what a command produced.
// Handlers do not write logs or run side effects: the engine does, from this.
type Result struct {
	Msg     string             // Log text
	MsgType string             // INFO, COMBAT, LOOT, QUEST, ERROR
	Events  []domain.GameEvent // Fed to the quest tracker
	Killed  []*domain.Enemy    // Enemies whose hp reached 0, the engine runs the kill pipeline
}

// HandlerFunc is the contract of every command.
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

func EmptyResult() Result {
	return Result{}
}

// Fail is a gameplay refusal: reported to the player, not an error.
func Fail(msg string) Result {
	return Result{Msg: msg, MsgType: MsgError}
}
