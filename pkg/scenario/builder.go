// Package scenario собирает начальный мир симуляции.
package scenario

import (
	"errors"
	"fmt"

	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/pkg/utils"
)

// Builder предоставляет fluent API для создания мира.
//
// Случайная расстановка не избегает наложений: клетка может содержать
// одновременно стену, агента и еду. Неоднозначность снимается приоритетом
// World.OccupantAt (WALL > AGENT > FOOD > NOTHING).
type Builder struct {
	world *domain.World
	rnd   utils.RandomSource
	err   error
}

// New создает builder для доски width×height. rnd нужен только для Spawn*.
func New(width, height int, rnd utils.RandomSource) *Builder {
	b := &Builder{world: domain.NewWorld(width, height), rnd: rnd}
	if width <= 0 || height <= 0 {
		b.err = fmt.Errorf("invalid board size %dx%d", width, height)
	}
	return b
}

// Reference - эталонная конфигурация: 12×9, 8 агентов, 4 еды, 4 стены
func Reference(rnd utils.RandomSource) *Builder {
	return New(domain.BoardWidth, domain.BoardHeight, rnd).
		SpawnAgents(domain.AgentsCount).
		SpawnFood(domain.FoodCount).
		SpawnWalls(domain.WallsCount)
}

func (b *Builder) randomPos() domain.Position {
	x := b.rnd.IntRange(0, b.world.Board.Width)
	y := b.rnd.IntRange(0, b.world.Board.Height)
	return domain.Position{X: x, Y: y}
}

func (b *Builder) needRandom() bool {
	if b.err != nil {
		return false
	}
	if b.rnd == nil {
		b.err = errors.New("random source is required for spawning")
		return false
	}
	return true
}

// SpawnAgents расставляет n агентов: x, y, направление; полные ресурсы, стартовое состояние
func (b *Builder) SpawnAgents(n int) *Builder {
	if !b.needRandom() {
		return b
	}
	for i := 0; i < n; i++ {
		pos := b.randomPos()
		dir := domain.Dir(b.rnd.IntRange(0, domain.DirCount))
		b.world.Agents = append(b.world.Agents, domain.NewAgent(pos, dir))
	}
	return b
}

// SpawnFood расставляет n единиц еды
func (b *Builder) SpawnFood(n int) *Builder {
	if !b.needRandom() {
		return b
	}
	for i := 0; i < n; i++ {
		b.world.Foods = append(b.world.Foods, domain.Food{Pos: b.randomPos()})
	}
	return b
}

// SpawnWalls расставляет n стен
func (b *Builder) SpawnWalls(n int) *Builder {
	if !b.needRandom() {
		return b
	}
	for i := 0; i < n; i++ {
		b.world.Walls = append(b.world.Walls, domain.Wall{Pos: b.randomPos()})
	}
	return b
}

func (b *Builder) place(p domain.Position) bool {
	if b.err != nil {
		return false
	}
	if err := b.world.Board.Check(p); err != nil {
		b.err = fmt.Errorf("place: %w", err)
		return false
	}
	return true
}

// PlaceAgent ставит агента в заданную клетку
func (b *Builder) PlaceAgent(p domain.Position, dir domain.Dir) *Builder {
	if b.place(p) {
		b.world.Agents = append(b.world.Agents, domain.NewAgent(p, dir))
	}
	return b
}

// PlaceFood ставит еду в заданную клетку
func (b *Builder) PlaceFood(p domain.Position) *Builder {
	if b.place(p) {
		b.world.Foods = append(b.world.Foods, domain.Food{Pos: p})
	}
	return b
}

// PlaceWall ставит стену в заданную клетку
func (b *Builder) PlaceWall(p domain.Position) *Builder {
	if b.place(p) {
		b.world.Walls = append(b.world.Walls, domain.Wall{Pos: p})
	}
	return b
}

// WithBrain задает таблицу правил мира
func (b *Builder) WithBrain(brain *domain.Brain) *Builder {
	b.world.ReplaceBrain(brain)
	return b
}

// Build возвращает собранный мир или первую ошибку цепочки
func (b *Builder) Build() (*domain.World, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.world, nil
}
