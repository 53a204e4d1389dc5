package admin

import (
	"errors"
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/internal/engine/handlers"
	"fmt"
)

// KillPayload: { "targetId": "enemy_..." }
type KillPayload struct {
	TargetID string `json:"targetId"`
}

func (p KillPayload) Validate() error {
	if p.TargetID == "" {
		return errors.New("targetId is required")
	}
	return nil
}

// GrantPayload: { "itemId": "potion_health", "quantity": 3 } or { "gold": 500 }
type GrantPayload struct {
	ItemID   string `json:"itemId,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	Gold     int    `json:"gold,omitempty"`
}

func (p GrantPayload) Validate() error {
	if p.ItemID == "" && p.Gold <= 0 {
		return errors.New("itemId or gold is required")
	}
	if p.Quantity < 0 {
		return errors.New("quantity cannot be negative")
	}
	return nil
}

func HandleHeal(ctx handlers.Context) (handlers.Result, error) {
	self := ctx.Player.Combat()
	if self.HP <= 0 {
		ctx.Player.Respawn(self.Pos)
	} else {
		ctx.Player.ApplyHeal(self.MaxHP)
	}
	return handlers.Result{Msg: "❤️ Fully healed", MsgType: handlers.MsgInfo}, nil
}

// HandleKill runs the regular kill pipeline on any enemy.
func HandleKill(ctx handlers.Context, p KillPayload) (handlers.Result, error) {
	target, ok := ctx.Enemies.Get(p.TargetID)
	if !ok || target.IsDead() {
		return handlers.Fail("Target not found"), nil
	}
	target.TakeDamage(target.HP)
	return handlers.Result{
		Msg:     fmt.Sprintf("💀 Smited %s", target.Name),
		MsgType: handlers.MsgCombat,
		Killed:  []*domain.Enemy{target},
	}, nil
}

func HandleGrant(ctx handlers.Context, p GrantPayload) (handlers.Result, error) {
	if p.Gold > 0 {
		ctx.Rewards.AddGold(p.Gold)
	}
	if p.ItemID != "" {
		qty := max(p.Quantity, 1)
		if !ctx.Rewards.AddItem(p.ItemID, qty) {
			return handlers.Fail(fmt.Sprintf("Cannot grant %s", p.ItemID)), nil
		}
	}
	return handlers.Result{Msg: "🎁 Granted", MsgType: handlers.MsgLoot}, nil
}
