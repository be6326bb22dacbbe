package systems

import (
	"testing"

	"github.com/NagaPranavN/evolol/internal/domain"
)

func TestApplyEat(t *testing.T) {
	w := createTestWorld()
	a := addAgent(w, 0, 0, domain.DirRight)
	w.Agents[a].Hunger = 12
	w.Foods = append(w.Foods, domain.Food{Pos: domain.Position{X: 1, Y: 0}})

	msg := ApplyEat(w, a, 0, domain.EatRestore)

	if !w.Foods[0].Eaten {
		t.Error("food should be eaten")
	}
	if w.Agents[a].Hunger != domain.MaxHunger {
		t.Errorf("Hunger = %d, want %d", w.Agents[a].Hunger, domain.MaxHunger)
	}
	if msg == "" {
		t.Error("expected log message")
	}
	if env := Perceive(w, a); env != domain.EnvNothing {
		t.Errorf("eaten food must not be perceived, got %v", env)
	}
}

func TestApplyHunger(t *testing.T) {
	w := createTestWorld()
	a := addAgent(w, 0, 0, domain.DirRight)
	w.Agents[a].Hunger = 0
	w.Agents[a].Health = domain.HungerDamage

	starving, died := ApplyHunger(w, a, domain.HungerDamage)
	if !starving || !died {
		t.Errorf("starving=%t died=%t, want both true", starving, died)
	}
	if !w.Agents[a].Dead {
		t.Error("agent should be dead")
	}
}
