package actions

import (
	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/internal/engine/handlers"
	"github.com/NagaPranavN/evolol/internal/systems"
)

// HandleAttack бьет агента в клетке перед собой.
// Бьем только живых: если в клетке одни трупы или цель ушла раньше
// в этом тике, действие понижается до NOP.
func HandleAttack(ctx handlers.Context) handlers.Result {
	target := ctx.World.AliveAgentAt(ctx.Target, ctx.Actor)
	if target == domain.NoEntity {
		return handlers.Downgraded()
	}

	res, logMsg := systems.ApplyAttack(ctx.World, ctx.Actor, target, domain.AttackDamage)

	return handlers.Result{
		Event:   domain.EventAttack,
		Target:  target,
		Msg:     logMsg,
		MsgType: "COMBAT",
		Killed:  res.Died,
	}
}
