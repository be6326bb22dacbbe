package actions

import (
	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/internal/engine/handlers"
	"github.com/NagaPranavN/evolol/internal/systems"
)

// HandleEat съедает еду в клетке перед собой.
// Если ее уже съел агент с меньшим индексом в этом тике, действие - NOP.
func HandleEat(ctx handlers.Context) handlers.Result {
	food := ctx.World.FoodAt(ctx.Target)
	if food == domain.NoEntity {
		return handlers.Downgraded()
	}

	logMsg := systems.ApplyEat(ctx.World, ctx.Actor, food, domain.EatRestore)

	return handlers.Result{
		Event:   domain.EventEat,
		Target:  food,
		Msg:     logMsg,
		MsgType: "FOOD",
		Fed:     true,
	}
}
