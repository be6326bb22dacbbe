package systems

import (
	"fmt"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/pkg/logger"

	"github.com/sirupsen/logrus"
)

// ApplyEat помечает еду съеденной и восстанавливает сытость агента на amount.
// Повторно съесть ту же еду нельзя: после этого клетка больше не FOOD.
func ApplyEat(w *domain.World, agent, food, amount int) string {
	a := &w.Agents[agent]
	f := &w.Foods[food]

	hungerBefore := a.Hunger
	f.Eaten = true
	a.Feed(amount)

	logger.Log.WithFields(logrus.Fields{
		"component":     "food_system",
		"agent":         agent,
		"food":          food,
		"pos":           f.Pos.String(),
		"hunger_before": hungerBefore,
		"hunger_after":  a.Hunger,
	}).Info("Food eaten.")

	return fmt.Sprintf("Агент %d съедает еду в клетке %s.", agent, f.Pos)
}

// ApplyHunger - пассивное голодание одного агента за тик.
// Возвращает (голодает ли, погиб ли).
func ApplyHunger(w *domain.World, agent, hungerDamage int) (starving, died bool) {
	a := &w.Agents[agent]
	starving, died = a.Decay(hungerDamage)
	if died {
		logger.Log.WithFields(logrus.Fields{
			"component": "needs_system",
			"agent":     agent,
			"pos":       a.Pos.String(),
			"tick":      w.Tick,
		}).Info("Agent starved to death.")
	}
	return starving, died
}
