package domain

import "testing"

func TestAgent_TakeDamage(t *testing.T) {
	a := NewAgent(Position{}, DirRight)

	if died := a.TakeDamage(AttackDamage); died {
		t.Fatal("agent should survive one hit")
	}
	if a.Health != MaxHealth-AttackDamage {
		t.Errorf("Health = %d, want %d", a.Health, MaxHealth-AttackDamage)
	}

	if died := a.TakeDamage(1000); !died {
		t.Error("expected lethal hit")
	}
	if a.Health != 0 || !a.Dead {
		t.Errorf("Health = %d, Dead = %t; want 0, true", a.Health, a.Dead)
	}

	if died := a.TakeDamage(10); died {
		t.Error("a corpse cannot die twice")
	}
}

func TestAgent_Feed(t *testing.T) {
	a := NewAgent(Position{}, DirRight)
	a.Hunger = 30

	a.Feed(EatRestore)
	if a.Hunger != MaxHunger {
		t.Errorf("Hunger = %d, want %d", a.Hunger, MaxHunger)
	}
}

func TestAgent_Decay(t *testing.T) {
	t.Run("hungry but not starving", func(t *testing.T) {
		a := NewAgent(Position{}, DirRight)
		starving, died := a.Decay(HungerDamage)
		if starving || died || a.Hunger != MaxHunger-1 || a.Health != MaxHealth {
			t.Errorf("got starving=%t died=%t hunger=%d health=%d", starving, died, a.Hunger, a.Health)
		}
	})

	t.Run("starving loses health", func(t *testing.T) {
		a := NewAgent(Position{}, DirRight)
		a.Hunger = 1
		starving, died := a.Decay(HungerDamage)
		if !starving || died {
			t.Errorf("got starving=%t died=%t", starving, died)
		}
		if a.Hunger != 0 || a.Health != MaxHealth-HungerDamage {
			t.Errorf("hunger=%d health=%d", a.Hunger, a.Health)
		}
	})

	t.Run("starvation kills and clamps", func(t *testing.T) {
		a := NewAgent(Position{}, DirRight)
		a.Hunger = 0
		a.Health = 2
		_, died := a.Decay(HungerDamage)
		if !died || a.Health != 0 || a.Hunger != 0 {
			t.Errorf("died=%t health=%d hunger=%d", died, a.Health, a.Hunger)
		}
	})

	t.Run("corpses do not decay", func(t *testing.T) {
		a := NewAgent(Position{}, DirRight)
		a.Dead = true
		a.Decay(HungerDamage)
		if a.Hunger != MaxHunger {
			t.Errorf("corpse hunger changed to %d", a.Hunger)
		}
	})
}
