package domain

import "ethereplodor-server/internal/core/types/enums"

// GoldItemID is the stackable single-unit currency drop.
const GoldItemID = "gold_coin"

// ItemStats are optional bonuses. Zero means "no bonus".
type ItemStats struct {
	Attack  int `json:"attack,omitempty"`
	Defense int `json:"defense,omitempty"`
	Speed   int `json:"speed,omitempty"`
	HP      int `json:"hp,omitempty"`
	Special int `json:"special,omitempty"`
}

// Item is both the immutable catalog template and, once copied, an instance.
type Item struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Type        enums.ItemType `json:"type"`
	Rarity      enums.Rarity   `json:"rarity"`
	Stackable   bool           `json:"stackable"`
	StackSize   int            `json:"stackSize"`
	Value       int            `json:"value"`
	Stats       *ItemStats     `json:"stats,omitempty"`
	Color       string         `json:"color,omitempty"`
}

// Clone copies the item including its stat block.
func (i Item) Clone() Item {
	if i.Stats != nil {
		s := *i.Stats
		i.Stats = &s
	}
	return i
}

// LootDrop is an item instance lying in the world.
type LootDrop struct {
	ID          string  `json:"id"`
	Item        Item    `json:"item"`
	Pos         Vec3    `json:"position"`
	PickupRange float64 `json:"pickupRange"`
}

// IsGold reports a currency drop.
func (d *LootDrop) IsGold() bool {
	return d.Item.ID == GoldItemID
}
