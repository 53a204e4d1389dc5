package events

import (
	"errors"
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/internal/engine/handlers"
	"ethereplodor-server/internal/systems"
	"ethereplodor-server/pkg/api"
	"fmt"
)

// HandleAreaTransition walks the player through a door of the current area.
func HandleAreaTransition(ctx handlers.Context, p api.DoorPayload) (handlers.Result, error) {
	// 1. Door and target area
	tr, err := ctx.Areas.Enter(p.DoorID, ctx.Player.Position())
	switch {
	case errors.Is(err, systems.ErrDoorOutOfReach):
		return handlers.Fail("You are too far from the door."), nil
	case err != nil:
		return handlers.Fail("There is no such door here."), nil
	}

	// 2. Place the player at the landing spot
	ctx.Player.SetPosition(tr.Spawn)

	// 3. Log, and count the first visit
	msg := fmt.Sprintf("You head out to %s.", tr.To.Name)
	if !tr.To.Type.Hostile() {
		msg = fmt.Sprintf("You step inside: %s.", tr.To.Name)
	}
	res := handlers.Result{Msg: msg, MsgType: handlers.MsgInfo}
	if tr.FirstVisit {
		res.Events = []domain.GameEvent{domain.AreaExplored(tr.To.ID)}
	}
	return res, nil
}
