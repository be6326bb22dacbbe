package domain

import "fmt"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Shift возвращает новую позицию со смещением (не меняя текущую)
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step возвращает соседнюю клетку по направлению d. Границы не проверяются.
func (p Position) Step(d Dir) Position {
	dx, dy := d.Vector()
	return p.Shift(dx, dy)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
