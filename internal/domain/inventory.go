package domain

import (
	"ethereplodor-server/internal/core/types/enums"
	"ethereplodor-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// DefaultInventorySlots is the slot capacity of a new inventory.
const DefaultInventorySlots = 40

// InventorySlot holds one item stack.
type InventorySlot struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// Inventory is the player's bag: slots, gold and equipment.
type Inventory struct {
	Slots    []InventorySlot `json:"slots"`
	MaxSlots int             `json:"maxSlots"`
	Gold     int             `json:"gold"`
	Weapon   *Item           `json:"weapon,omitempty"`
	Armor    *Item           `json:"armor,omitempty"`
}

func NewInventory(maxSlots int) *Inventory {
	if maxSlots <= 0 {
		maxSlots = DefaultInventorySlots
	}
	return &Inventory{MaxSlots: maxSlots}
}

func (inv *Inventory) find(itemID string) int {
	for i := range inv.Slots {
		if inv.Slots[i].Item.ID == itemID {
			return i
		}
	}
	return -1
}

// AddItem stacks stackable items onto an existing slot, otherwise takes free slots.
// A full bag rejects the whole add without mutation.
func (inv *Inventory) AddItem(item Item, quantity int) bool {
	if quantity <= 0 {
		return false
	}

	if item.Stackable {
		if idx := inv.find(item.ID); idx >= 0 {
			inv.Slots[idx].Quantity += quantity
			return true
		}
		if len(inv.Slots) >= inv.MaxSlots {
			inv.warnFull(item.ID)
			return false
		}
		inv.Slots = append(inv.Slots, InventorySlot{Item: item.Clone(), Quantity: quantity})
		return true
	}

	// Non-stackable: one slot per unit.
	if len(inv.Slots)+quantity > inv.MaxSlots {
		inv.warnFull(item.ID)
		return false
	}
	for i := 0; i < quantity; i++ {
		inv.Slots = append(inv.Slots, InventorySlot{Item: item.Clone(), Quantity: 1})
	}
	return true
}

// Fits reports whether every stack could be added in one go.
func (inv *Inventory) Fits(stacks []InventorySlot) bool {
	free := inv.MaxSlots - len(inv.Slots)
	opened := make(map[string]bool)
	for _, st := range stacks {
		switch {
		case st.Quantity <= 0:
		case !st.Item.Stackable:
			free -= st.Quantity
		case inv.find(st.Item.ID) >= 0 || opened[st.Item.ID]:
		default:
			opened[st.Item.ID] = true
			free--
		}
	}
	return free >= 0
}

func (inv *Inventory) warnFull(itemID string) {
	logger.Component("inventory").WithFields(logrus.Fields{
		"item_id":   itemID,
		"slots":     len(inv.Slots),
		"max_slots": inv.MaxSlots,
	}).Warn("Inventory full, item rejected")
}

// RemoveItem takes quantity units of itemID. Fails without mutation when short.
func (inv *Inventory) RemoveItem(itemID string, quantity int) bool {
	if quantity <= 0 || inv.Quantity(itemID) < quantity {
		return false
	}

	remaining := quantity
	kept := inv.Slots[:0]
	for _, slot := range inv.Slots {
		if remaining > 0 && slot.Item.ID == itemID {
			take := min(slot.Quantity, remaining)
			slot.Quantity -= take
			remaining -= take
		}
		if slot.Quantity > 0 {
			kept = append(kept, slot)
		}
	}
	inv.Slots = kept
	return true
}

// Quantity sums every slot holding itemID.
func (inv *Inventory) Quantity(itemID string) int {
	total := 0
	for _, slot := range inv.Slots {
		if slot.Item.ID == itemID {
			total += slot.Quantity
		}
	}
	return total
}

func (inv *Inventory) HasItem(itemID string, quantity int) bool {
	return inv.Quantity(itemID) >= quantity
}

// Lookup returns a copy of the first stack of itemID.
func (inv *Inventory) Lookup(itemID string) (Item, bool) {
	if idx := inv.find(itemID); idx >= 0 {
		return inv.Slots[idx].Item.Clone(), true
	}
	return Item{}, false
}

func (inv *Inventory) AddGold(amount int) {
	if amount > 0 {
		inv.Gold += amount
	}
}

// RemoveGold fails when the balance is insufficient.
func (inv *Inventory) RemoveGold(amount int) bool {
	if amount < 0 || inv.Gold < amount {
		return false
	}
	inv.Gold -= amount
	return true
}

// Equip moves a weapon or armor from the bag to its slot, returning the old piece to the bag.
func (inv *Inventory) Equip(itemID string) bool {
	item, ok := inv.Lookup(itemID)
	if !ok {
		return false
	}

	var slot **Item
	switch item.Type {
	case enums.ItemTypeWeapon:
		slot = &inv.Weapon
	case enums.ItemTypeArmor:
		slot = &inv.Armor
	default:
		return false
	}

	if !inv.RemoveItem(itemID, 1) {
		return false
	}
	if *slot != nil {
		// 1 slot was just freed, this cannot overflow.
		inv.AddItem(**slot, 1)
	}
	*slot = &item
	return true
}

// AttackBonus is the equipped weapon bonus.
func (inv *Inventory) AttackBonus() int {
	if inv.Weapon != nil && inv.Weapon.Stats != nil {
		return inv.Weapon.Stats.Attack
	}
	return 0
}

// DefenseBonus is the equipped armor bonus.
func (inv *Inventory) DefenseBonus() int {
	if inv.Armor != nil && inv.Armor.Stats != nil {
		return inv.Armor.Stats.Defense
	}
	return 0
}

// Clone deep-copies the inventory for snapshots.
func (inv *Inventory) Clone() *Inventory {
	out := *inv
	out.Slots = make([]InventorySlot, len(inv.Slots))
	for i, s := range inv.Slots {
		out.Slots[i] = InventorySlot{Item: s.Item.Clone(), Quantity: s.Quantity}
	}
	if inv.Weapon != nil {
		w := inv.Weapon.Clone()
		out.Weapon = &w
	}
	if inv.Armor != nil {
		a := inv.Armor.Clone()
		out.Armor = &a
	}
	return &out
}
