package actions

import (
	"ethereplodor-server/internal/domain"
	"ethereplodor-server/internal/engine/handlers"
	"ethereplodor-server/internal/systems"
	"fmt"
	"strings"
)

// HandleAttack swings at every live enemy within reach.
func HandleAttack(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Areas.Current().Type.Hostile() {
		return handlers.Fail("There is nothing to fight here."), nil
	}

	// 1. Cooldown, spent even on a miss
	if !ctx.Strike.Trigger(ctx.Now) {
		return handlers.EmptyResult(), nil
	}

	// 2. Targets, from a copy of the registry
	attacker := ctx.Player.Combat()
	targets := systems.WithinRange(attacker.Pos, domain.PlayerAttackRange, ctx.Enemies.Snapshot(), systems.EnemyPos)
	if len(targets) == 0 {
		return handlers.EmptyResult(), nil
	}

	// 3. Damage
	var res handlers.Result
	lines := make([]string, 0, len(targets))
	for _, target := range targets {
		hit := ctx.Combat.ResolveDamage(&attacker, &target.CombatEntity)

		killed := false
		ctx.Enemies.Update(target.ID, func(e **domain.Enemy) {
			killed = systems.ApplyDamage(&(*e).CombatEntity, hit.Damage)
		})

		line := fmt.Sprintf("You hit %s for %d", target.Name, hit.Damage)
		if hit.IsCritical {
			line += " (critical!)"
		}
		if killed {
			line += fmt.Sprintf(". %s is defeated", target.Name)
			res.Killed = append(res.Killed, target)
		}
		lines = append(lines, line)
	}

	res.Msg = strings.Join(lines, "; ") + "."
	res.MsgType = handlers.MsgCombat
	return res, nil
}
