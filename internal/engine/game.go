package engine

import (
	"fmt"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/internal/engine/handlers"
	"github.com/NagaPranavN/evolol/internal/engine/handlers/actions"
	"github.com/NagaPranavN/evolol/internal/systems"
	"github.com/NagaPranavN/evolol/pkg/api"
	"github.com/NagaPranavN/evolol/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Decision - решение одного агента, принятое по снимку начала тика
type Decision struct {
	Agent  int             `json:"agent"`
	Env    domain.Env      `json:"env"`
	Target domain.Position `json:"target"`
	Action domain.Action   `json:"action"`
	Next   domain.State    `json:"next"`
}

// TickReport - что произошло за тик
type TickReport struct {
	Tick      int            `json:"tick"`
	Decisions []Decision     `json:"decisions"`
	Events    []domain.Event `json:"events"`
}

// Count возвращает количество событий данного типа
func (r TickReport) Count(t domain.EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// GameEngine - движок тиков. Единственный писатель мира.
type GameEngine struct {
	World *domain.World
	Logs  []api.LogEntry // Лог с момента последнего снимка

	handlers map[domain.Action]handlers.HandlerFunc
}

func NewGame(world *domain.World) *GameEngine {
	return &GameEngine{
		World:    world,
		Logs:     []api.LogEntry{},
		handlers: actions.Registry(),
	}
}

// Decide - фаза 1: каждый живой агент воспринимает снимок мира и
// консультируется с Brain. Мир не меняется, поэтому решения не зависят
// от порядка обхода агентов.
func (g *GameEngine) Decide() []Decision {
	w := g.World
	decisions := make([]Decision, 0, len(w.Agents))

	for i := range w.Agents {
		a := &w.Agents[i]
		if a.Dead {
			continue
		}

		env := systems.Perceive(w, i)
		act, next := w.Brain.Lookup(a.State, env)

		decisions = append(decisions, Decision{
			Agent:  i,
			Env:    env,
			Target: systems.FacingCell(w, i),
			Action: act,
			Next:   next,
		})
	}
	return decisions
}

// Tick продвигает симуляцию на один шаг:
//  1. Decide: решения всех агентов по снимку начала тика.
//  2. Apply: действия применяются в порядке индексов к живому миру;
//     конфликты (две цели на одну клетку, одна еда) решает меньший индекс.
//  3. Decay: пассивное голодание всех живых агентов, кроме поевших в этом тике.
func (g *GameEngine) Tick() TickReport {
	w := g.World
	decisions := g.Decide()
	report := TickReport{Tick: w.Tick + 1, Decisions: decisions}

	fed := make(map[int]bool)

	// --- Фаза применения ---
	for _, d := range decisions {
		a := &w.Agents[d.Agent]

		// Убит агентом с меньшим индексом в этом же тике
		if a.Dead {
			continue
		}

		handler, ok := g.handlers[d.Action]
		if !ok {
			handler = func(handlers.Context) handlers.Result { return handlers.Downgraded() }
		}

		res := handler(handlers.Context{World: w, Actor: d.Agent, Env: d.Env, Target: d.Target})

		if res.Event != domain.EventUnknown {
			report.Events = append(report.Events, domain.Event{
				Type: res.Event, Agent: d.Agent, Target: res.Target, Pos: a.Pos,
			})
		}
		if res.Msg != "" {
			g.AddLog(res.Msg, res.MsgType)
		}
		if res.Killed {
			report.Events = append(report.Events, domain.Event{
				Type: domain.EventDied, Agent: res.Target, Target: d.Agent, Pos: w.Agents[res.Target].Pos,
			})
		}
		if res.Fed {
			fed[d.Agent] = true
		}

		a.State = d.Next
	}

	// --- Пассивное голодание ---
	for i := range w.Agents {
		if w.Agents[i].Dead || fed[i] {
			continue
		}
		starving, died := systems.ApplyHunger(w, i, domain.HungerDamage)
		if starving {
			report.Events = append(report.Events, domain.Event{
				Type: domain.EventStarving, Agent: i, Target: domain.NoEntity, Pos: w.Agents[i].Pos,
			})
		}
		if died {
			report.Events = append(report.Events, domain.Event{
				Type: domain.EventDied, Agent: i, Target: domain.NoEntity, Pos: w.Agents[i].Pos,
			})
			g.AddLog(fmt.Sprintf("Агент %d умирает от голода.", i), "DEATH")
		}
	}

	w.Tick++

	logger.Component("tick_engine").WithFields(logrus.Fields{
		"tick":      w.Tick,
		"decisions": len(decisions),
		"events":    len(report.Events),
		"alive":     w.AliveCount(),
		"food_left": w.RemainingFood(),
	}).Debug("Tick completed.")

	return report
}

// ReplaceBrain заменяет таблицу правил целиком. Вызывать только между тиками.
func (g *GameEngine) ReplaceBrain(b *domain.Brain) {
	g.World.ReplaceBrain(b)
	warnShadowed(g.World.Brain)
	g.AddLog(fmt.Sprintf("Таблица правил заменена (%d правил).", g.World.Brain.Len()), "INFO")
}
