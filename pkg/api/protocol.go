package api

import (
	"encoding/json"
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
)

// --- SERVER -> CLIENT ---

// SnapshotType is the only message type the server emits.
const SnapshotType = "UPDATE"

// Snapshot is the full plain-data state of one simulation, published after every tick.
// External layers (renderer, UI, persistence) consume it; the core never reads it back.
type Snapshot struct {
	// Type is always "UPDATE".
	Type string `json:"type"`

	// Tick counts simulation passes since start.
	Tick int64 `json:"tick"`

	// Time is the simulation clock in unix milliseconds.
	Time int64 `json:"time"`

	// Player is the current player shape, equipment included.
	Player PlayerView `json:"player"`

	// Area is where the player stands, doors included.
	Area domain.Area `json:"area"`

	// Enemies are the live (and lingering dead) hostile entities.
	Enemies []EnemyView `json:"enemies"`

	// WildCreatures are the capturable creatures in the world.
	WildCreatures []domain.Creature `json:"wildCreatures"`

	// Loot lists the drops lying in the world.
	Loot []domain.LootDrop `json:"loot"`

	// Quests in catalog order, with progress.
	Quests []domain.Quest `json:"quests"`

	// OwnedCreatures in capture order; Team holds the active ids.
	OwnedCreatures []domain.Creature `json:"ownedCreatures"`
	Team           []string          `json:"team"`

	Inventory domain.Inventory `json:"inventory"`
	Shop      []ShopEntryView  `json:"shop,omitempty"`

	// Logs are the entries produced since the previous snapshot.
	Logs []LogEntry `json:"logs,omitempty"`
}

// PlayerView is what the core knows about the player.
type PlayerView struct {
	ID          string      `json:"id"`
	HP          int         `json:"hp"`
	MaxHP       int         `json:"maxHp"`
	Attack      int         `json:"attack"`
	Defense     int         `json:"defense"`
	Position    domain.Vec3 `json:"position"`
	AttackReady bool        `json:"attackReady"`
}

// EnemyView flattens an enemy for clients.
type EnemyView struct {
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Kind     enums.EnemyKind  `json:"kind"`
	Level    int              `json:"level"`
	State    enums.EnemyState `json:"state"`
	HP       int              `json:"hp"`
	MaxHP    int              `json:"maxHp"`
	Position domain.Vec3      `json:"position"`
}

// ShopEntryView is one line of the shop.
type ShopEntryView struct {
	ItemID string       `json:"itemId"`
	Name   string       `json:"name"`
	Rarity enums.Rarity `json:"rarity"`
	Price  int          `json:"price"`
	// Stock is -1 for unlimited.
	Stock int `json:"stock"`
}

// LogEntry is one line of the game log.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, LOOT, QUEST, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- CLIENT -> SERVER ---

// ClientCommand is the root object of every client message.
type ClientCommand struct {
	// Action names the command (ATTACK, CAPTURE, USE_ITEM...).
	Action string `json:"action"`

	// Payload depends on Action and may be empty.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// PlayerSyncPayload carries the player position from the physics layer (PLAYER_SYNC).
type PlayerSyncPayload struct {
	Position domain.Vec3 `json:"position"`
}

// CapturePayload picks the ball (CAPTURE). Empty means basic.
type CapturePayload struct {
	Ball enums.BallType `json:"ball,omitempty"`
}

// ItemPayload is used by USE_ITEM, EQUIP, BUY and SELL.
type ItemPayload struct {
	ItemID string `json:"itemId"`
	Count  int    `json:"count,omitempty"` // BUY/SELL quantity, 1 when omitted
}

// QuestPayload is used by START_QUEST and CLAIM_REWARD.
type QuestPayload struct {
	QuestID string `json:"questId"`
}

// DoorPayload names a door of the current area (ENTER_AREA).
type DoorPayload struct {
	DoorID string `json:"doorId"`
}

// CreaturePayload is used by TEAM_ADD, TEAM_REMOVE and EVOLVE.
type CreaturePayload struct {
	CreatureID string `json:"creatureId"`
}
