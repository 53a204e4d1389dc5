package systems

import (
	"errors"
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/internal/domain"
	"fmt"
)

// ExperienceScrollID grants ScrollExperience to the lead creature.
const (
	ExperienceScrollID = "scroll_experience"
	ScrollExperience   = 100
)

var (
	ErrItemNotFound  = errors.New("item not in inventory")
	ErrNotUsable     = errors.New("item cannot be used")
	ErrFullHealth    = errors.New("already at full health")
	ErrNoLead        = errors.New("no creature in the active team")
	ErrInventoryFull = errors.New("inventory full")
)

// UseResult tells the caller what to apply outside the inventory.
type UseResult struct {
	Message  string         `json:"message"`
	Heal     int            `json:"heal,omitempty"`
	Level    *LevelUpResult `json:"level,omitempty"`
	Equipped bool           `json:"equipped,omitempty"`
}

// UseTarget is what an item can act upon.
type UseTarget struct {
	HP     int
	MaxHP  int
	Lead   *domain.Creature
	Levels *ProgressionEngine
}

// --- USE ---

// UseItem consumes or equips one unit of itemID.
// Healing is returned, not applied: the player's health lives with the caller.
func UseItem(inv *domain.Inventory, itemID string, target UseTarget) (UseResult, error) {
	item, ok := inv.Lookup(itemID)
	if !ok {
		return UseResult{}, ErrItemNotFound
	}

	switch item.Type {
	case enums.ItemTypeWeapon, enums.ItemTypeArmor:
		if !inv.Equip(itemID) {
			return UseResult{}, fmt.Errorf("equip %s: %w", itemID, ErrNotUsable)
		}
		return UseResult{Equipped: true, Message: fmt.Sprintf("Equipped %s.", item.Name)}, nil

	case enums.ItemTypeConsumable:
		// handled below

	default:
		return UseResult{}, ErrNotUsable
	}

	if item.ID == ExperienceScrollID {
		if target.Lead == nil || target.Levels == nil {
			return UseResult{}, ErrNoLead
		}
		inv.RemoveItem(itemID, 1)
		lvl := target.Levels.AwardExperience(target.Lead, ScrollExperience)
		return UseResult{
			Level:   &lvl,
			Message: fmt.Sprintf("%s gains %d experience.", target.Lead.Name, ScrollExperience),
		}, nil
	}

	if item.Stats == nil || item.Stats.HP <= 0 {
		return UseResult{}, ErrNotUsable
	}
	if target.HP >= target.MaxHP {
		return UseResult{}, ErrFullHealth
	}

	heal := min(item.Stats.HP, target.MaxHP-target.HP)
	inv.RemoveItem(itemID, 1)
	return UseResult{Heal: heal, Message: fmt.Sprintf("Restored %d HP.", heal)}, nil
}

// --- PICKUP ---

// PickupResult of one collected drop.
type PickupResult struct {
	DropID   string `json:"dropId"`
	ItemID   string `json:"itemId"`
	Gold     int    `json:"gold,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
}

// TryPickup moves a drop into the inventory. The drop is taken from the world
// only when it fits, and only once.
func TryPickup(inv *domain.Inventory, drop *domain.LootDrop, loot *LootGenerator) (PickupResult, error) {
	res := PickupResult{DropID: drop.ID, ItemID: drop.Item.ID}

	if drop.IsGold() {
		if !loot.Remove(drop.ID) {
			return res, fmt.Errorf("drop %s: %w", drop.ID, ErrItemNotFound)
		}
		inv.AddGold(1)
		res.Gold = 1
		return res, nil
	}

	if _, ok := loot.Get(drop.ID); !ok {
		return res, fmt.Errorf("drop %s: %w", drop.ID, ErrItemNotFound)
	}
	if !inv.AddItem(drop.Item, 1) {
		return res, ErrInventoryFull
	}
	loot.Remove(drop.ID)
	res.Quantity = 1
	return res, nil
}
