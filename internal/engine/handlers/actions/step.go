package actions

import (
	"fmt"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/internal/engine/handlers"
	"github.com/NagaPranavN/evolol/internal/systems"
)

// HandleStep двигает агента на клетку вперед.
// Занятость проверяется по живому миру: если раньше в этом тике туда
// шагнул агент с меньшим индексом, шаг блокируется (первый побеждает).
func HandleStep(ctx handlers.Context) handlers.Result {
	res := systems.CalculateStep(ctx.World, ctx.Actor)

	if res.HasMoved {
		ctx.Agent().Pos = res.NewPos
		return handlers.Result{Event: domain.EventStep, Target: domain.NoEntity}
	}

	if res.AtEdge {
		// Край доски: шаг прижат к текущей клетке, это обычный NOP
		return handlers.EmptyResult()
	}

	return handlers.Result{
		Event:   domain.EventBlocked,
		Target:  res.BlockedBy,
		Msg:     fmt.Sprintf("Агент %d упирается в препятствие %s.", ctx.Actor, systems.FacingCell(ctx.World, ctx.Actor)),
		MsgType: "INFO",
	}
}
