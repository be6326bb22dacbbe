package domain

import "encoding/json"

// ReplayCommand - запись одной команды, изменившей мир
type ReplayCommand struct {
	Tick    int             `json:"tick"`    // Тик мира в момент исполнения
	Command CommandType     `json:"command"` // TICK или BRAIN
	Payload json.RawMessage `json:"payload"` // С какими параметрами
}

// ReplaySession - полная запись прогона. Мир детерминирован при заданных
// сиде, размерах и командах, поэтому этого достаточно для воспроизведения.
type ReplaySession struct {
	Seed      int64           `json:"seed"`
	Timestamp int64           `json:"timestamp"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	Agents    int             `json:"agents"`
	Foods     int             `json:"foods"`
	Walls     int             `json:"walls"`
	Brain     json.RawMessage `json:"brain,omitempty"` // Начальная таблица правил (формат brainfile)
	Commands  []ReplayCommand `json:"commands"`
}

// Record добавляет команду в ленту
func (s *ReplaySession) Record(tick int, cmd CommandType, payload json.RawMessage) {
	s.Commands = append(s.Commands, ReplayCommand{
		Tick:    tick,
		Command: cmd,
		Payload: append(json.RawMessage(nil), payload...),
	})
}
