package systems

import (
	"fmt"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/pkg/logger"

	"github.com/sirupsen/logrus"
)

// AttackResult - итог одной атаки
type AttackResult struct {
	Damage   int
	HPBefore int
	HPAfter  int
	Died     bool
}

// ApplyAttack наносит урон агенту target от агента attacker.
// Возвращает итог и строку для игрового лога.
func ApplyAttack(w *domain.World, attacker, target, damage int) (AttackResult, string) {
	combatLogger := logger.Component("combat_system").WithFields(logrus.Fields{
		"attacker":  attacker,
		"target":    target,
		"tick":      w.Tick,
	})

	victim := &w.Agents[target]

	if victim.Dead {
		combatLogger.Info("Attack ineffective: target is already dead.")
		return AttackResult{HPBefore: victim.Health, HPAfter: victim.Health}, fmt.Sprintf("Агент %d пинает труп агента %d.", attacker, target)
	}

	res := AttackResult{Damage: damage, HPBefore: victim.Health}
	res.Died = victim.TakeDamage(damage)
	res.HPAfter = victim.Health

	combatLogger.WithFields(logrus.Fields{
		"damage":      damage,
		"hp_before":   res.HPBefore,
		"hp_after":    res.HPAfter,
		"target_died": res.Died,
	}).Info("Attack resolved.")

	logMsg := fmt.Sprintf("Агент %d наносит %d урона агенту %d.", attacker, damage, target)
	if res.Died {
		logMsg += fmt.Sprintf(" Агент %d погибает.", target)
	}
	return res, logMsg
}
