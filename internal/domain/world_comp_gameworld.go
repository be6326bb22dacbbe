package domain

// NoEntity - индекс "сущность не найдена"
const NoEntity = -1

// OccupantAt возвращает классификацию клетки.
// Приоритет: WALL > AGENT > FOOD > NOTHING. Клетки могут перекрываться
// (случайная расстановка это допускает), и приоритет - единственный источник
// истины для такой клетки. Съеденная еда не учитывается, мертвые агенты учитываются.
//
// Позиция вне доски - нарушение инварианта ядра: паникуем с *OutOfBoundsError.
func (w *World) OccupantAt(p Position) Env {
	return w.OccupantAtExcept(p, NoEntity)
}

// OccupantAtExcept - то же, что OccupantAt, но игнорирует агента с индексом self.
// Нужно для восприятия у края доски, где целевая клетка совпадает с клеткой агента.
func (w *World) OccupantAtExcept(p Position, self int) Env {
	if err := w.Board.Check(p); err != nil {
		panic(err)
	}
	if w.WallAt(p) {
		return EnvWall
	}
	if w.AgentAt(p, self) != NoEntity {
		return EnvAgent
	}
	if w.FoodAt(p) != NoEntity {
		return EnvFood
	}
	return EnvNothing
}

// WallAt проверяет, стоит ли в клетке стена
func (w *World) WallAt(p Position) bool {
	for i := range w.Walls {
		if w.Walls[i].Pos == p {
			return true
		}
	}
	return false
}

// AgentAt возвращает индекс первого агента (живого или мертвого) в клетке, кроме self
func (w *World) AgentAt(p Position, self int) int {
	for i := range w.Agents {
		if i != self && w.Agents[i].Pos == p {
			return i
		}
	}
	return NoEntity
}

// AliveAgentAt - как AgentAt, но пропускает трупы.
// Цель атаки в клетке с несколькими агентами - живой агент с меньшим индексом.
func (w *World) AliveAgentAt(p Position, self int) int {
	for i := range w.Agents {
		if i != self && !w.Agents[i].Dead && w.Agents[i].Pos == p {
			return i
		}
	}
	return NoEntity
}

// FoodAt возвращает индекс первой несъеденной еды в клетке
func (w *World) FoodAt(p Position) int {
	for i := range w.Foods {
		if !w.Foods[i].Eaten && w.Foods[i].Pos == p {
			return i
		}
	}
	return NoEntity
}

// AliveCount возвращает количество живых агентов
func (w *World) AliveCount() int {
	n := 0
	for i := range w.Agents {
		if !w.Agents[i].Dead {
			n++
		}
	}
	return n
}

// RemainingFood возвращает количество несъеденной еды
func (w *World) RemainingFood() int {
	n := 0
	for i := range w.Foods {
		if !w.Foods[i].Eaten {
			n++
		}
	}
	return n
}

// ReplaceBrain заменяет таблицу правил целиком. Вызывается только между тиками.
func (w *World) ReplaceBrain(b *Brain) {
	if b == nil {
		b = NewBrain()
	}
	w.Brain = b
}
