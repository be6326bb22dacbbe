package domain

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds - позиция вне доски. Это ошибка программиста, а не игрока.
var ErrOutOfBounds = errors.New("out of bounds")

// OutOfBoundsError содержит координаты и размеры доски для диагностики
type OutOfBoundsError struct {
	Pos    Position
	Width  int
	Height int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %s outside board %dx%d", e.Pos, e.Width, e.Height)
}

// Is позволяет проверять через errors.Is(err, ErrOutOfBounds)
func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
