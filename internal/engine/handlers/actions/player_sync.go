package actions

import (
	"ethereplodor-server/internal/engine/handlers"
	"ethereplodor-server/pkg/api"
)

// HandlePlayerSync takes the player position from the physics layer.
func HandlePlayerSync(ctx handlers.Context, p api.PlayerSyncPayload) (handlers.Result, error) {
	ctx.Player.SetPosition(p.Position)
	return handlers.EmptyResult(), nil
}
