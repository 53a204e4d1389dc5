package actions

import (
	"ethereplodor-server/internal/engine/handlers"
	"ethereplodor-server/pkg/api"
	"fmt"
)

func HandleBuy(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	qty := p.Quantity()
	if err := ctx.Shop.Buy(p.ItemID, qty, ctx.Player.Inventory()); err != nil {
		return handlers.Fail(err.Error()), nil
	}
	entry, _ := ctx.Shop.Entry(p.ItemID)
	return handlers.Result{
		Msg:     fmt.Sprintf("Bought %dx %s for %d gold.", qty, entry.Item.Name, entry.Price*qty),
		MsgType: handlers.MsgLoot,
	}, nil
}

func HandleSell(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	qty := p.Quantity()
	inv := ctx.Player.Inventory()
	item, _ := inv.Lookup(p.ItemID)

	earned, err := ctx.Shop.Sell(p.ItemID, qty, inv)
	if err != nil {
		return handlers.Fail(err.Error()), nil
	}
	return handlers.Result{
		Msg:     fmt.Sprintf("Sold %dx %s for %d gold.", qty, item.Name, earned),
		MsgType: handlers.MsgLoot,
	}, nil
}
