package actions

import (
	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/internal/engine/handlers"
)

// Registry возвращает хендлеры всех действий агентов.
// Предусловия по Env навешиваются здесь, а не внутри хендлеров.
func Registry() map[domain.Action]handlers.HandlerFunc {
	reg := map[domain.Action]handlers.HandlerFunc{
		domain.ActionNop:    HandleNop,
		domain.ActionStep:   HandleStep,
		domain.ActionEat:    HandleEat,
		domain.ActionAttack: HandleAttack,
	}
	for action, h := range reg {
		reg[action] = handlers.WithPrecondition(action, h)
	}
	return reg
}
