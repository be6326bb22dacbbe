package handlers

import (
	"github.com/NagaPranavN/evolol/internal/domain"
)

// WithPrecondition оборачивает хендлер проверкой предусловия действия:
// воспринятый Env должен совпадать с видом цели действия (EAT - FOOD, ATTACK - AGENT).
// Проверка делается движком независимо от того, что выдал Brain, поэтому
// ошибочная таблица правил не может испортить состояние.
func WithPrecondition(action domain.Action, handler HandlerFunc) HandlerFunc {
	required, ok := action.RequiredEnv()
	if !ok {
		return handler
	}
	return func(ctx Context) Result {
		if ctx.Env != required {
			return Downgraded()
		}
		return handler(ctx)
	}
}
