package engine

import (
	"github.com/NagaPranavN/evolol/internal/domain"
	"github.com/NagaPranavN/evolol/pkg/api"
)

// BuildSnapshot создает снимок мира для адаптера отображения.
// Снимок - независимая копия: дальнейшие тики его не меняют.
func BuildSnapshot(w *domain.World, runID string, logs []api.LogEntry) *api.ServerResponse {
	resp := &api.ServerResponse{
		Type:   "UPDATE",
		RunID:  runID,
		Tick:   w.Tick,
		Grid:   &api.GridMeta{Width: w.Board.Width, Height: w.Board.Height},
		Agents: make([]api.AgentView, 0, len(w.Agents)),
		Foods:  make([]api.FoodView, 0, len(w.Foods)),
		Walls:  make([]api.WallView, 0, len(w.Walls)),
		Logs:   logs,
	}

	for i, a := range w.Agents {
		resp.Agents = append(resp.Agents, api.AgentView{
			ID:     i,
			Pos:    toPositionView(a.Pos),
			Dir:    a.Dir.String(),
			Hunger: a.Hunger,
			Health: a.Health,
			State:  int(a.State),
			IsDead: a.Dead,
		})
	}

	for i, f := range w.Foods {
		resp.Foods = append(resp.Foods, api.FoodView{
			ID:    i,
			Pos:   toPositionView(f.Pos),
			Eaten: f.Eaten,
		})
	}

	for _, wall := range w.Walls {
		resp.Walls = append(resp.Walls, api.WallView{Pos: toPositionView(wall.Pos)})
	}

	return resp
}

func toPositionView(p domain.Position) api.PositionView {
	return api.PositionView{X: p.X, Y: p.Y}
}
