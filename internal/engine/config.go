package engine

import (
	"fmt"
	"time"

	"github.com/NagaPranavN/evolol/internal/domain"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - зерно генерации мира. Один и тот же сид дает один и тот же мир.
	Seed int64

	Width  int
	Height int

	Agents int
	Foods  int
	Walls  int

	// BrainPath - путь к JSON-таблице правил. Пусто - встроенная таблица.
	BrainPath string
}

// NewConfig создает конфиг по умолчанию (эталонная доска, случайный сид)
func NewConfig() Config {
	return Config{
		Seed:   time.Now().UnixNano(),
		Width:  domain.BoardWidth,
		Height: domain.BoardHeight,
		Agents: domain.AgentsCount,
		Foods:  domain.FoodCount,
		Walls:  domain.WallsCount,
	}
}

// Validate проверяет размеры и количества
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid board size %dx%d", c.Width, c.Height)
	}
	if c.Agents < 0 || c.Foods < 0 || c.Walls < 0 {
		return fmt.Errorf("entity counts cannot be negative (agents=%d food=%d walls=%d)", c.Agents, c.Foods, c.Walls)
	}
	return nil
}
