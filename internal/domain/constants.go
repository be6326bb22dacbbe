package domain

// Эталонная конфигурация доски и популяции
const (
	BoardWidth  = 12
	BoardHeight = 9

	AgentsCount = 8
	FoodCount   = 4
	WallsCount  = 4
)

// Ресурсы агента
const (
	MaxHunger = 100
	MaxHealth = 100
)

// Баланс действий
const (
	// EatRestore - сколько сытости возвращает EAT (с ограничением MaxHunger).
	// Равно MaxHunger: еда полностью насыщает.
	EatRestore = MaxHunger

	// AttackDamage - урон от одного ATTACK
	AttackDamage = 10

	// HungerDecay - сколько сытости теряется за тик
	HungerDecay = 1

	// HungerDamage - урон здоровью за тик, пока сытость равна нулю
	HungerDamage = 5
)
