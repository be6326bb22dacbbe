package domain

// Agent - направленный агент с конечным автоматом поведения.
// Идентификатор агента - его индекс в World.Agents (порядок стабилен).
type Agent struct {
	Pos    Position `json:"pos"`
	Dir    Dir      `json:"dir"`
	Hunger int      `json:"hunger"`
	Health int      `json:"health"`
	State  State    `json:"state"`

	// Dead - здоровье дошло до нуля. Труп остается на месте как препятствие:
	// не воспринимает, не действует, не голодает.
	Dead bool `json:"dead"`
}

// NewAgent создает агента с полными ресурсами в стартовом состоянии
func NewAgent(pos Position, dir Dir) Agent {
	return Agent{
		Pos:    pos,
		Dir:    dir,
		Hunger: MaxHunger,
		Health: MaxHealth,
		State:  StartState,
	}
}

// Food - еда. После создания не перемещается.
type Food struct {
	Pos   Position `json:"pos"`
	Eaten bool     `json:"eaten"`
}

// Wall - неподвижное препятствие
type Wall struct {
	Pos Position `json:"pos"`
}
