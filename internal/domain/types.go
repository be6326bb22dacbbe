package domain

import "strings"

// Dir - направление, куда смотрит агент
type Dir uint8

const (
	DirRight Dir = iota
	DirUp
	DirLeft
	DirDown
)

// DirCount - количество направлений (для генерации случайного направления)
const DirCount = 4

var dirNames = [...]string{"RIGHT", "UP", "LEFT", "DOWN"}

// Vector возвращает единичный вектор направления.
// Ось Y направлена вниз, как в экранных координатах.
func (d Dir) Vector() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	case DirDown:
		return 0, 1
	}
	return 0, 0
}

func (d Dir) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "UNKNOWN"
}

// ParseDir конвертирует строку в Dir (нечувствительно к регистру)
func ParseDir(s string) (Dir, bool) {
	upper := strings.ToUpper(s)
	for i, name := range dirNames {
		if name == upper {
			return Dir(i), true
		}
	}
	return DirRight, false
}

// Env - классификация содержимого клетки с точки зрения агента
type Env uint8

const (
	EnvNothing Env = iota
	EnvAgent
	EnvFood
	EnvWall
)

var envNames = [...]string{"NOTHING", "AGENT", "FOOD", "WALL"}

func (e Env) String() string {
	if int(e) < len(envNames) {
		return envNames[e]
	}
	return "UNKNOWN"
}

// MarshalText - Env в JSON пишется именем (отчеты тиков, debug)
func (e Env) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// ParseEnv конвертирует строку из JSON в Env
func ParseEnv(s string) (Env, bool) {
	upper := strings.ToUpper(s)
	for i, name := range envNames {
		if name == upper {
			return Env(i), true
		}
	}
	return EnvNothing, false
}

// Action - действие, которое агент пытается совершить в этом тике
type Action uint8

const (
	ActionNop Action = iota
	ActionStep
	ActionEat
	ActionAttack
)

// Маппинг для конвертации JSON -> Domain
var actionStringToAction = map[string]Action{
	"NOP":    ActionNop,
	"STEP":   ActionStep,
	"EAT":    ActionEat,
	"ATTACK": ActionAttack,
}

// Маппинг для логов Domain -> String
var actionToString = map[Action]string{
	ActionNop:    "NOP",
	ActionStep:   "STEP",
	ActionEat:    "EAT",
	ActionAttack: "ATTACK",
}

// ParseAction конвертирует строку в Action. Второе значение false, если имя неизвестно.
func ParseAction(s string) (Action, bool) {
	val, ok := actionStringToAction[strings.ToUpper(s)]
	return val, ok
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a Action) String() string {
	if val, ok := actionToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// RequiredEnv возвращает, что агент должен видеть перед собой, чтобы действие было допустимо.
// Для NOP и STEP предусловия по Env нет.
func (a Action) RequiredEnv() (Env, bool) {
	switch a {
	case ActionEat:
		return EnvFood, true
	case ActionAttack:
		return EnvAgent, true
	}
	return EnvNothing, false
}

// State - метка состояния конечного автомата агента. Индексирует правила Brain.
type State int

// StartState - состояние, в котором рождаются агенты
const StartState State = 0
