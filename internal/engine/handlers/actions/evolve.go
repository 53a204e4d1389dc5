package actions

import (
	"ethereplodor-server/internal/engine/handlers"
	"ethereplodor-server/pkg/api"
	"fmt"
)

// HandleEvolve evolves an owned creature that has reached its evolution level.
func HandleEvolve(ctx handlers.Context, p api.CreaturePayload) (handlers.Result, error) {
	c, ok := ctx.Player.Roster().Get(p.CreatureID)
	if !ok {
		return handlers.Fail("Unknown creature."), nil
	}

	switch {
	case c.Evolution == nil:
		return handlers.Fail(fmt.Sprintf("%s cannot evolve.", c.Name)), nil
	case c.Evolution.Evolved:
		return handlers.Fail(fmt.Sprintf("%s has already evolved.", c.Name)), nil
	case !ctx.Levels.CanEvolve(c):
		return handlers.Fail(fmt.Sprintf("%s is not ready to evolve (level %d required).", c.Name, c.Evolution.Level)), nil
	}

	before := c.Name
	ctx.Levels.Evolve(c)
	return handlers.Result{
		Msg:     fmt.Sprintf("%s evolved into %s!", before, c.Name),
		MsgType: handlers.MsgInfo,
	}, nil
}
