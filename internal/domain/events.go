package domain

import "strings"

// EventType - что произошло с агентом в ходе тика
type EventType uint8

const (
	EventUnknown EventType = iota
	EventStep
	EventBlocked
	EventEat
	EventAttack
	EventDowngraded // Brain выдал действие, недопустимое для воспринятого Env
	EventDied
	EventStarving
)

// Маппинг для конвертации JSON -> Domain
var eventStringToType = map[string]EventType{
	"STEP":       EventStep,
	"BLOCKED":    EventBlocked,
	"EAT":        EventEat,
	"ATTACK":     EventAttack,
	"DOWNGRADED": EventDowngraded,
	"DIED":       EventDied,
	"STARVING":   EventStarving,
}

// Маппинг для логов Domain -> String
var eventTypeToString = map[EventType]string{
	EventStep:       "STEP",
	EventBlocked:    "BLOCKED",
	EventEat:        "EAT",
	EventAttack:     "ATTACK",
	EventDowngraded: "DOWNGRADED",
	EventDied:       "DIED",
	EventStarving:   "STARVING",
}

// ParseEvent конвертирует строку из JSON в EventType
func ParseEvent(s string) EventType {
	if val, ok := eventStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return EventUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (e EventType) String() string {
	if val, ok := eventTypeToString[e]; ok {
		return val
	}
	return "UNKNOWN"
}

// Event - факт, произошедший в тике. Target - индекс второй стороны
// (атакованный агент, съеденная еда) или NoEntity.
type Event struct {
	Type   EventType `json:"type"`
	Agent  int       `json:"agent"`
	Target int       `json:"target"`
	Pos    Position  `json:"pos"`
}

func (e EventType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}
