package utils

import (
	"hash/fnv"
	"math/rand"
)

// RandomSource - равномерный генератор целых чисел на [low, high).
// Нужен только при генерации мира; дальше симуляция детерминирована.
type RandomSource interface {
	IntRange(low, high int) int
}

// Random - RandomSource поверх math/rand с фиксированным сидом
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// IntRange возвращает число из [low, high). Если high <= low, возвращает low.
func (r *Random) IntRange(low, high int) int {
	if high <= low {
		return low
	}
	return r.rng.Intn(high-low) + low
}

// ScriptedRandom выдает заранее заданную последовательность (для тестов).
// Значения прижимаются к запрошенному диапазону; после конца ленты выдается low.
type ScriptedRandom struct {
	Values []int
	pos    int
}

func NewScriptedRandom(values ...int) *ScriptedRandom {
	return &ScriptedRandom{Values: values}
}

func (s *ScriptedRandom) IntRange(low, high int) int {
	if s.pos >= len(s.Values) || high <= low {
		return low
	}
	v := s.Values[s.pos]
	s.pos++
	if v < low {
		return low
	}
	if v >= high {
		return high - 1
	}
	return v
}

// StringToSeed превращает строку (имя сценария, ID прогона) в сид
func StringToSeed(s string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return int64(h.Sum64())
}
