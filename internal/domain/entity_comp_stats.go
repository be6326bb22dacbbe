package domain

// TakeDamage наносит урон. Возвращает true, если агент погиб от этого удара.
func (a *Agent) TakeDamage(amount int) bool {
	if a.Dead {
		return false
	}
	if amount < 0 {
		amount = 0
	}

	a.Health -= amount
	if a.Health <= 0 {
		a.Health = 0
		a.Dead = true
		return true
	}
	return false
}

// Feed восстанавливает сытость (не выше MaxHunger)
func (a *Agent) Feed(amount int) {
	if a.Dead {
		return // Трупы не едят
	}
	a.Hunger += amount
	if a.Hunger > MaxHunger {
		a.Hunger = MaxHunger
	}
}

// Decay - пассивное голодание за один тик.
// Сытость падает на HungerDecay (минимум 0); на нуле агент теряет damage здоровья.
// Возвращает (голодает ли агент, погиб ли он в этом тике).
func (a *Agent) Decay(damage int) (starving, died bool) {
	if a.Dead {
		return false, false
	}

	a.Hunger -= HungerDecay
	if a.Hunger < 0 {
		a.Hunger = 0
	}
	if a.Hunger > 0 {
		return false, false
	}
	return true, a.TakeDamage(damage)
}
