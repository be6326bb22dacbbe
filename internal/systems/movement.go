package systems

import (
	"github.com/NagaPranavN/evolol/internal/domain"
)

// MovementResult - результат вычисления шага
type MovementResult struct {
	NewPos    domain.Position
	HasMoved  bool
	BlockedBy int  // Индекс агента, в которого уперлись, или domain.NoEntity
	IsWall    bool // Уперлись в стену
	AtEdge    bool // Шаг за край доски прижат к текущей клетке
}

// CalculateStep вычисляет шаг агента на одну клетку по направлению взгляда.
// Не меняет состояние мира!
//
// Стена или другой агент (живой или труп) блокируют шаг: без вытеснения
// и без наложения. Еда не мешает.
func CalculateStep(w *domain.World, idx int) MovementResult {
	a := &w.Agents[idx]
	target := FacingCell(w, idx)

	res := MovementResult{NewPos: a.Pos, BlockedBy: domain.NoEntity}

	// 1. Край доски
	if target == a.Pos {
		res.AtEdge = true
		return res
	}

	// 2. Стены
	if w.WallAt(target) {
		res.IsWall = true
		return res
	}

	// 3. Другие агенты
	if other := w.AgentAt(target, idx); other != domain.NoEntity {
		res.BlockedBy = other
		return res
	}

	res.NewPos = target
	res.HasMoved = true
	return res
}
