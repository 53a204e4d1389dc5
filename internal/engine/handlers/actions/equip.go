package actions

import (
	"ethereplodor-server/internal/engine/handlers"
	"ethereplodor-server/pkg/api"
	"fmt"
)

// HandleEquip moves a weapon or armor into its slot.
func HandleEquip(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	inv := ctx.Player.Inventory()
	item, ok := inv.Lookup(p.ItemID)
	if !ok {
		return handlers.Fail("Item not in inventory."), nil
	}
	if !inv.Equip(p.ItemID) {
		return handlers.Fail(fmt.Sprintf("%s cannot be equipped.", item.Name)), nil
	}
	return handlers.Result{Msg: fmt.Sprintf("Equipped %s.", item.Name), MsgType: handlers.MsgInfo}, nil
}
