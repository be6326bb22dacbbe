package domain

// Rule - одна строка таблицы переходов: (state, env) -> (action, next)
type Rule struct {
	State  State  `json:"state"`
	Env    Env    `json:"env"`
	Action Action `json:"action"`
	Next   State  `json:"next"`
}

// Brain - упорядоченная таблица правил, общая для всех агентов.
//
// Таблица не обязана быть полной: для пары (state, env) без правила
// Lookup возвращает (NOP, state). Если подходят несколько правил,
// побеждает первое в порядке таблицы.
//
// Brain неизменяем после создания. Эволюция/обучение должны заменять
// таблицу целиком между тиками (World.ReplaceBrain), а не мутировать ее.
type Brain struct {
	rules []Rule
}

// NewBrain копирует правила, чтобы вызывающий код не мог изменить таблицу
func NewBrain(rules ...Rule) *Brain {
	return &Brain{rules: append([]Rule(nil), rules...)}
}

// Lookup - чистая функция: одинаковые (state, env) всегда дают одинаковый результат
func (b *Brain) Lookup(state State, env Env) (Action, State) {
	if b != nil {
		for _, r := range b.rules {
			if r.State == state && r.Env == env {
				return r.Action, r.Next
			}
		}
	}
	return ActionNop, state
}

// Rules возвращает копию таблицы
func (b *Brain) Rules() []Rule {
	if b == nil {
		return nil
	}
	return append([]Rule(nil), b.rules...)
}

// Len возвращает количество правил
func (b *Brain) Len() int {
	if b == nil {
		return 0
	}
	return len(b.rules)
}

// Shadowed возвращает индексы правил, которые никогда не сработают,
// потому что раньше в таблице есть правило с тем же ключом (state, env).
func (b *Brain) Shadowed() []int {
	if b == nil {
		return nil
	}
	type key struct {
		s State
		e Env
	}
	seen := make(map[key]bool, len(b.rules))
	var shadowed []int
	for i, r := range b.rules {
		k := key{r.State, r.Env}
		if seen[k] {
			shadowed = append(shadowed, i)
			continue
		}
		seen[k] = true
	}
	return shadowed
}
