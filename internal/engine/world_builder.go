package engine

import (
	"fmt"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/internal/infrastructure/brainfile"
	"github.com/NagaPranavN/evolol/pkg/scenario"
	"github.com/NagaPranavN/evolol/pkg/logger"
	"github.com/NagaPranavN/evolol/pkg/utils"

	"github.com/sirupsen/logrus"
)

// buildInitialWorld создает мир по конфигу: случайная расстановка от сида + таблица правил.
func buildInitialWorld(cfg Config, brain *domain.Brain) (*domain.World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	world, err := scenario.New(cfg.Width, cfg.Height, utils.NewRandom(cfg.Seed)).
		SpawnAgents(cfg.Agents).
		SpawnFood(cfg.Foods).
		SpawnWalls(cfg.Walls).
		WithBrain(brain).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build world: %w", err)
	}
	return world, nil
}

// loadBrain загружает таблицу из cfg.BrainPath или возвращает встроенную
func loadBrain(cfg Config) (*domain.Brain, error) {
	if cfg.BrainPath == "" {
		return brainfile.DefaultBrain(), nil
	}
	return brainfile.Load(cfg.BrainPath)
}

// warnShadowed предупреждает о правилах, которые никогда не сработают (first match wins)
func warnShadowed(b *domain.Brain) {
	shadowed := b.Shadowed()
	if len(shadowed) == 0 {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"component": "brain",
		"rules":     shadowed,
	}).Warn("Brain has shadowed rules; only the first rule per (state, env) is used")
}
