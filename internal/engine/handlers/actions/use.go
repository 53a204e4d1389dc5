package actions

import (
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/internal/engine/handlers"
	"ethereplodor-server/internal/systems"
	"ethereplodor-server/pkg/api"
	"fmt"
)

// HandleUseItem consumes a potion or scroll, or equips gear.
func HandleUseItem(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	self := ctx.Player.Combat()
	lead := ctx.Player.Roster().Lead()

	used, err := systems.UseItem(ctx.Player.Inventory(), p.ItemID, systems.UseTarget{
		HP:     self.HP,
		MaxHP:  self.MaxHP,
		Lead:   lead,
		Levels: ctx.Levels,
	})
	if err != nil {
		return handlers.Fail(err.Error()), nil
	}

	if used.Heal > 0 {
		ctx.Player.ApplyHeal(used.Heal)
	}

	res := handlers.Result{Msg: used.Message, MsgType: handlers.MsgInfo}
	if used.Level != nil && used.Level.LeveledUp {
		res.Msg += fmt.Sprintf(" %s reached level %d!", lead.Name, used.Level.NewLevel)
		if used.Level.Evolved {
			res.Msg += fmt.Sprintf(" It evolved into %s!", lead.Name)
		}
		res.Events = append(res.Events, domain.CreatureLeveled(lead.SpeciesID, used.Level.LevelsGained))
	}
	return res, nil
}
