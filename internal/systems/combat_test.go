package systems

import (
	"testing"

	"github.com/NagaPranavN/evolol/internal/domain"
)

func TestApplyAttack(t *testing.T) {
	w := createTestWorld()
	attacker := addAgent(w, 0, 0, domain.DirRight)
	target := addAgent(w, 1, 0, domain.DirLeft)

	res, msg := ApplyAttack(w, attacker, target, domain.AttackDamage)

	if w.Agents[target].Health != domain.MaxHealth-domain.AttackDamage {
		t.Errorf("Expected target HP %d, got %d", domain.MaxHealth-domain.AttackDamage, w.Agents[target].Health)
	}
	if res.HPBefore != domain.MaxHealth || res.Died {
		t.Errorf("unexpected result %+v", res)
	}
	if msg == "" {
		t.Error("Expected attack log message, got empty string")
	}

	// Смертельный удар
	res, _ = ApplyAttack(w, attacker, target, 1000)
	if !res.Died || !w.Agents[target].Dead || w.Agents[target].Health != 0 {
		t.Errorf("Expected target to be dead, got %+v / %+v", res, w.Agents[target])
	}

	// По трупу
	res, _ = ApplyAttack(w, attacker, target, domain.AttackDamage)
	if res.Died || res.HPAfter != 0 {
		t.Errorf("attacking a corpse should change nothing, got %+v", res)
	}
}
