package systems

import (
	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/pkg/logger"

	"github.com/sirupsen/logrus"
)

// FacingCell возвращает клетку перед агентом, прижатую к границам доски.
// У края доски целевая клетка совпадает с клеткой самого агента (без заворачивания).
func FacingCell(w *domain.World, idx int) domain.Position {
	a := &w.Agents[idx]
	return w.Board.Clamp(a.Pos.Step(a.Dir))
}

// Perceive вычисляет Env клетки, с которой агент собирается взаимодействовать.
// Восприятие строго локальное: одна клетка, только по направлению взгляда.
// Сам агент себя не видит (важно у края доски).
func Perceive(w *domain.World, idx int) domain.Env {
	target := FacingCell(w, idx)
	env := w.OccupantAtExcept(target, idx)

	if logger.Log.IsLevelEnabled(logrus.DebugLevel) {
		logger.Log.WithFields(logrus.Fields{
			"component": "perception_system",
			"agent":     idx,
			"pos":       w.Agents[idx].Pos.String(),
			"dir":       w.Agents[idx].Dir.String(),
			"target":    target.String(),
			"env":       env.String(),
		}).Debug("Agent perceived cell")
	}
	return env
}
