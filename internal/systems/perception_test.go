package systems

import (
	"testing"

	"github.com/NagaPranavN/evolol/internal/domain"
)

func TestPerceive(t *testing.T) {
	t.Run("empty cell ahead", func(t *testing.T) {
		w := createTestWorld()
		a := addAgent(w, 5, 5, domain.DirUp)
		if env := Perceive(w, a); env != domain.EnvNothing {
			t.Errorf("got %v, want NOTHING", env)
		}
	})

	t.Run("food ahead", func(t *testing.T) {
		w := createTestWorld()
		a := addAgent(w, 0, 0, domain.DirRight)
		w.Foods = append(w.Foods, domain.Food{Pos: domain.Position{X: 1, Y: 0}})
		if env := Perceive(w, a); env != domain.EnvFood {
			t.Errorf("got %v, want FOOD", env)
		}
	})

	t.Run("agent ahead", func(t *testing.T) {
		w := createTestWorld()
		a := addAgent(w, 4, 4, domain.DirDown)
		addAgent(w, 4, 5, domain.DirUp)
		if env := Perceive(w, a); env != domain.EnvAgent {
			t.Errorf("got %v, want AGENT", env)
		}
	})

	t.Run("wall beats food", func(t *testing.T) {
		w := createTestWorld()
		a := addAgent(w, 4, 4, domain.DirLeft)
		p := domain.Position{X: 3, Y: 4}
		w.Foods = append(w.Foods, domain.Food{Pos: p})
		w.Walls = append(w.Walls, domain.Wall{Pos: p})
		if env := Perceive(w, a); env != domain.EnvWall {
			t.Errorf("got %v, want WALL", env)
		}
	})

	t.Run("board edge perceives own cell without self", func(t *testing.T) {
		w := createTestWorld()
		a := addAgent(w, 0, 0, domain.DirLeft)
		if env := Perceive(w, a); env != domain.EnvNothing {
			t.Errorf("got %v, want NOTHING", env)
		}
		if cell := FacingCell(w, a); cell != (domain.Position{X: 0, Y: 0}) {
			t.Errorf("FacingCell = %v, want (0,0)", cell)
		}
	})

	t.Run("board edge with food underfoot", func(t *testing.T) {
		w := createTestWorld()
		a := addAgent(w, domain.BoardWidth-1, 3, domain.DirRight)
		w.Foods = append(w.Foods, domain.Food{Pos: domain.Position{X: domain.BoardWidth - 1, Y: 3}})
		if env := Perceive(w, a); env != domain.EnvFood {
			t.Errorf("got %v, want FOOD", env)
		}
	})
}
