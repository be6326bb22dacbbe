// Package agent содержит внешних клиентов движка, работающих в том же процессе.
package agent

import (
	"context"
	"encoding/json"
	"time"

	"github.com/NagaPranavN/evolol/internal/engine"
	"github.com/NagaPranavN/evolol/pkg/api"
	"github.com/NagaPranavN/evolol/pkg/logger"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Autopilot - "нажимающий кнопку" клиент: раз в Interval отправляет TICK.
// Подключается к движку так же, как адаптер отображения: через Hub и
// очередь команд, поэтому единственным писателем мира остается сервис.
//
// Останавливается, когда:
//   - отменен контекст;
//   - достигнут MaxTicks (0 - без ограничения);
//   - в мире не осталось живых агентов.
type Autopilot struct {
	ID       string
	Service  *engine.GameService
	Interval time.Duration
	Step     int // Тиков за одну команду
	MaxTicks int

	Inbox chan api.ServerResponse
	last  api.ServerResponse
}

func NewAutopilot(service *engine.GameService, interval time.Duration, step, maxTicks int) *Autopilot {
	if step <= 0 {
		step = 1
	}
	if step > api.MaxTicksPerCommand {
		step = api.MaxTicksPerCommand
	}
	id := "autopilot-" + uuid.NewString()
	return &Autopilot{
		ID:       id,
		Service:  service,
		Interval: interval,
		Step:     step,
		MaxTicks: maxTicks,
		Inbox:    service.Hub.Register(id),
		last:     *service.Snapshot(),
	}
}

// Run - цикл автопилота. Блокируется, запускать в горутине.
func (a *Autopilot) Run(ctx context.Context) {
	defer a.Service.Hub.Unregister(a.ID)

	log := logger.Log.WithFields(logrus.Fields{
		"component": "autopilot",
		"client_id": a.ID,
	})
	log.WithField("interval", a.Interval).Info("Autopilot started")

	ticker := time.NewTicker(a.Interval)
	defer ticker.Stop()

	pending := false
	for {
		if a.done() {
			log.WithField("tick", a.last.Tick).Info("Autopilot finished")
			return
		}

		select {
		case <-ctx.Done():
			log.Info("Autopilot stopped")
			return

		case msg, ok := <-a.Inbox:
			if !ok {
				return
			}
			switch msg.Type {
			case "UPDATE":
				a.last = msg
				pending = false
			case "ERROR":
				pending = false
				log.WithField("logs", len(msg.Logs)).Warn("Command rejected by engine")
			}

		case <-ticker.C:
			// Не копим команды, если движок еще не ответил на прошлую
			if pending {
				continue
			}
			pending = a.sendTick()
		}
	}
}

// Last возвращает последний полученный снимок
func (a *Autopilot) Last() api.ServerResponse {
	return a.last
}

func (a *Autopilot) done() bool {
	if a.MaxTicks > 0 && a.last.Tick >= a.MaxTicks {
		return true
	}
	for _, ag := range a.last.Agents {
		if !ag.IsDead {
			return false
		}
	}
	return len(a.last.Agents) > 0
}

func (a *Autopilot) sendTick() bool {
	count := a.Step
	if a.MaxTicks > 0 && a.last.Tick+count > a.MaxTicks {
		count = a.MaxTicks - a.last.Tick
	}
	payload, err := json.Marshal(api.TickPayload{Count: count})
	if err != nil {
		return false
	}
	a.Service.ProcessCommand(a.ID, api.ClientCommand{Action: "TICK", Payload: payload})
	return true
}
