package actions

import (
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/internal/engine/handlers"
	"ethereplodor-server/internal/systems"
	"ethereplodor-server/pkg/api"
	"ethereplodor-server/pkg/logger"
	"ethereplodor-server/pkg/utils"
	"fmt"

	"github.com/sirupsen/logrus"
)

// HandleCapture throws a ball at the nearest wild creature.
func HandleCapture(ctx handlers.Context, p api.CapturePayload) (handlers.Result, error) {
	if !ctx.Areas.Current().Type.Hostile() {
		return handlers.Fail("There is nothing to catch here."), nil
	}

	// 1. Target
	target, ok := systems.Nearest(ctx.Player.Position(), domain.CaptureRange, ctx.Wild.Snapshot(), systems.CreaturePos)
	if !ok {
		return handlers.Fail("No wild creature close enough."), nil
	}

	// 2. Ball, basic ones are free
	inv := ctx.Player.Inventory()
	if itemID := p.Ball.ItemID(); itemID != "" {
		if !inv.RemoveItem(itemID, 1) {
			return handlers.Fail(fmt.Sprintf("You have no %s ball.", p.Ball)), nil
		}
	}

	// 3. Roll
	roll := ctx.Capture.Attempt(target, p.Ball)

	log := logger.Component("capture_handler").WithFields(logrus.Fields{
		"creature_id": target.ID,
		"species":     target.SpeciesID,
		"ball":        p.Ball.String(),
		"chance":      roll.Chance,
		"shakes":      roll.Shakes,
	})

	if !roll.Success {
		log.Debug("Capture failed")
		return handlers.Result{
			Msg:     fmt.Sprintf("%s broke free after %d shakes!", target.Name, roll.Shakes),
			MsgType: handlers.MsgCombat,
		}, nil
	}

	// 4. Mint the owned copy, drop the wild one
	roster := ctx.Player.Roster()
	owned := roster.Capture(target, utils.GenerateDeterministicID(ctx.Rng, "creature_"))
	ctx.Wild.Remove(target.ID)

	msg := fmt.Sprintf("Gotcha! %s (Lv.%d) was captured.", owned.Name, owned.Level)
	if roster.TeamFull() || !roster.AddToTeam(owned.ID) {
		msg += " Your team is full, it stays in storage."
	}

	log.WithField("owned_id", owned.ID).Info("Creature captured")

	return handlers.Result{
		Msg:     msg,
		MsgType: handlers.MsgCombat,
		Events:  []domain.GameEvent{domain.CreatureCaptured(owned.SpeciesID)},
	}, nil
}
