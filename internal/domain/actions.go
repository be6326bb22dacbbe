package domain

import "strings"

// CommandType - внешняя команда, управляющая симуляцией (от адаптера отображения)
type CommandType uint8

const (
	CommandUnknown CommandType = iota
	CommandInit
	CommandTick
	CommandBrain
)

// Маппинг для конвертации JSON -> Domain
var commandStringToType = map[string]CommandType{
	"INIT":  CommandInit,
	"TICK":  CommandTick,
	"BRAIN": CommandBrain,
}

// Маппинг для логов Domain -> String
var commandTypeToString = map[CommandType]string{
	CommandInit:  "INIT",
	CommandTick:  "TICK",
	CommandBrain: "BRAIN",
}

// ParseCommand конвертирует строку из JSON в CommandType
func ParseCommand(s string) CommandType {
	// Делаем нечувствительным к регистру для надежности
	if val, ok := commandStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return CommandUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (c CommandType) String() string {
	if val, ok := commandTypeToString[c]; ok {
		return val
	}
	return "UNKNOWN"
}

// Mutates сообщает, меняет ли команда мир (такие команды пишутся в реплей)
func (c CommandType) Mutates() bool {
	return c == CommandTick || c == CommandBrain
}
