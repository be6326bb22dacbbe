package engine

import (
	"bytes"
	"fmt"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/internal/infrastructure/brainfile"
	"github.com/NagaPranavN/evolol/pkg/logger"

	"github.com/sirupsen/logrus"
)

// Simulate восстанавливает мир из сида реплея и заново применяет все команды.
// Движок детерминирован, поэтому результат совпадает с исходным прогоном.
func Simulate(session *domain.ReplaySession) (*GameEngine, error) {
	brain := brainfile.DefaultBrain()
	if len(session.Brain) > 0 {
		b, err := brainfile.Decode(bytes.NewReader(session.Brain))
		if err != nil {
			return nil, fmt.Errorf("replay brain: %w", err)
		}
		brain = b
	}

	cfg := Config{
		Seed:   session.Seed,
		Width:  session.Width,
		Height: session.Height,
		Agents: session.Agents,
		Foods:  session.Foods,
		Walls:  session.Walls,
	}
	world, err := buildInitialWorld(cfg, brain)
	if err != nil {
		return nil, err
	}
	game := NewGame(world)

	for i, cmd := range session.Commands {
		if cmd.Tick != world.Tick {
			return nil, fmt.Errorf("replay desync at command %d: recorded tick %d, world tick %d", i, cmd.Tick, world.Tick)
		}
		if _, err := applyCommand(game, cmd.Command, cmd.Payload, nil); err != nil {
			return nil, fmt.Errorf("replay command %d (%s): %w", i, cmd.Command, err)
		}
	}

	logger.Log.WithFields(logrus.Fields{
		"component": "replay",
		"seed":      session.Seed,
		"commands":  len(session.Commands),
		"tick":      world.Tick,
		"alive":     world.AliveCount(),
	}).Info("Replay simulated.")

	return game, nil
}
