package domain

// Board - дискретная сетка W×H. Занятость клеток не хранится,
// а вычисляется по позициям сущностей (см. World.OccupantAt).
type Board struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// InBounds проверяет, лежит ли позиция в [0, W-1] × [0, H-1]
func (b Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Check возвращает *OutOfBoundsError, если позиция вне доски
func (b Board) Check(p Position) error {
	if !b.InBounds(p) {
		return &OutOfBoundsError{Pos: p, Width: b.Width, Height: b.Height}
	}
	return nil
}

// Clamp прижимает позицию к границам доски (без заворачивания)
func (b Board) Clamp(p Position) Position {
	return Position{X: clamp(p.X, 0, b.Width-1), Y: clamp(p.Y, 0, b.Height-1)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// World - агрегат симуляции: доска, хранилище сущностей и таблица правил.
// Единственный писатель - движок тиков; адаптер отображения только читает
// завершенный снимок между тиками.
type World struct {
	Board  Board   `json:"board"`
	Agents []Agent `json:"agents"`
	Foods  []Food  `json:"foods"`
	Walls  []Wall  `json:"walls"`
	Brain  *Brain  `json:"-"`
	Tick   int     `json:"tick"`
}

// NewWorld создает пустой мир заданного размера с пустой таблицей правил
func NewWorld(width, height int) *World {
	return &World{
		Board:  Board{Width: width, Height: height},
		Agents: make([]Agent, 0),
		Foods:  make([]Food, 0),
		Walls:  make([]Wall, 0),
		Brain:  NewBrain(),
	}
}

// Clone возвращает независимую копию мира. Brain неизменяем, поэтому разделяется.
func (w *World) Clone() *World {
	c := &World{
		Board:  w.Board,
		Agents: append(make([]Agent, 0, len(w.Agents)), w.Agents...),
		Foods:  append(make([]Food, 0, len(w.Foods)), w.Foods...),
		Walls:  append(make([]Wall, 0, len(w.Walls)), w.Walls...),
		Brain:  w.Brain,
		Tick:   w.Tick,
	}
	return c
}
