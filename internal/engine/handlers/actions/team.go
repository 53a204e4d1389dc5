package actions

import (
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/internal/engine/handlers"
	"ethereplodor-server/pkg/api"
	"fmt"
)

func HandleTeamAdd(ctx handlers.Context, p api.CreaturePayload) (handlers.Result, error) {
	roster := ctx.Player.Roster()
	c, ok := roster.Get(p.CreatureID)
	if !ok {
		return handlers.Fail("Unknown creature."), nil
	}
	if roster.TeamFull() {
		return handlers.Fail(fmt.Sprintf("Your team is full (%d).", domain.MaxTeamSize)), nil
	}
	if !roster.AddToTeam(p.CreatureID) {
		return handlers.Fail(fmt.Sprintf("%s cannot join the team.", c.Name)), nil
	}
	return handlers.Result{Msg: fmt.Sprintf("%s joined the team.", c.Name), MsgType: handlers.MsgInfo}, nil
}

func HandleTeamRemove(ctx handlers.Context, p api.CreaturePayload) (handlers.Result, error) {
	roster := ctx.Player.Roster()
	c, ok := roster.Get(p.CreatureID)
	if !ok || !roster.RemoveFromTeam(p.CreatureID) {
		return handlers.Fail("That creature is not in the team."), nil
	}
	return handlers.Result{Msg: fmt.Sprintf("%s left the team.", c.Name), MsgType: handlers.MsgInfo}, nil
}
