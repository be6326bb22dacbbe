package actions

import "github.com/NagaPranavN/evolol/internal/engine/handlers"

func HandleNop(ctx handlers.Context) handlers.Result {
	return handlers.EmptyResult()
}
