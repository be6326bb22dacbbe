package handlers

import (
	"github.com/NagaPranavN/evolol/internal/domain"
)

// Context передает хендлеру состояние мира на фазе применения.
// World - живой мир (уже с изменениями агентов с меньшими индексами),
// Env - то, что агент воспринял в снимке начала тика.
type Context struct {
	World  *domain.World
	Actor  int             // Индекс агента, выполняющего действие
	Env    domain.Env      // Воспринятое окружение (из снимка)
	Target domain.Position // Клетка перед агентом (прижатая к доске)
}

// Agent - удобный доступ к исполнителю
func (c Context) Agent() *domain.Agent {
	return &c.World.Agents[c.Actor]
}

// Result - результат выполнения действия.
// Хендлер НЕ пишет в лог движка напрямую, он возвращает данные.
type Result struct {
	Event   domain.EventType // Что произошло (EventUnknown - ничего)
	Target  int              // Вторая сторона события или domain.NoEntity
	Msg     string           // Текст игрового лога
	MsgType string           // Тип лога (INFO, COMBAT, FOOD)
	Fed     bool             // Агент поел в этом тике (освобождает от голодания)
	Killed  bool             // Цель погибла от этого действия
}

// HandlerFunc - это контракт для любого действия (NOP, STEP, EAT, ATTACK).
type HandlerFunc func(ctx Context) Result

// EmptyResult - вспомогательная функция для пустого ответа
func EmptyResult() Result {
	return Result{Target: domain.NoEntity}
}

// Downgraded - действие недопустимо и исполнено как NOP
func Downgraded() Result {
	return Result{Event: domain.EventDowngraded, Target: domain.NoEntity}
}
