package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет адаптеру отображения.
// Это полный "снимок" мира после завершенного тика. Адаптер его только читает.
type ServerResponse struct {
	// Type тип сообщения: INIT, UPDATE или ERROR.
	Type string `json:"type"`

	// RunID идентификатор прогона симуляции.
	RunID string `json:"runId,omitempty"`

	// Tick номер последнего завершенного тика.
	Tick int `json:"tick"`

	// Grid метаданные о размере доски.
	Grid *GridMeta `json:"grid,omitempty"`

	Agents []AgentView `json:"agents"`
	Foods  []FoodView  `json:"foods"`
	Walls  []WallView  `json:"walls"`

	// Logs новые записи игрового лога с прошлого снимка.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит размеры доски, чтобы клиент знал, какую сетку рисовать.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// PositionView - координаты клетки
type PositionView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// AgentView это DTO для агента.
type AgentView struct {
	ID     int          `json:"id"` // Индекс в хранилище, стабилен на весь прогон
	Pos    PositionView `json:"pos"`
	Dir    string       `json:"dir"` // RIGHT, UP, LEFT, DOWN
	Hunger int          `json:"hunger"`
	Health int          `json:"health"`
	State  int          `json:"state"`
	IsDead bool         `json:"isDead"`
}

// FoodView это DTO для еды.
type FoodView struct {
	ID    int          `json:"id"`
	Pos   PositionView `json:"pos"`
	Eaten bool         `json:"eaten"`
}

// WallView это DTO для стены.
type WallView struct {
	Pos PositionView `json:"pos"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Tick      int    `json:"tick"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, COMBAT, FOOD, DEATH, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название команды: INIT, TICK, BRAIN.
	Action string `json:"action"`

	// Payload JSON-объект с данными для команды. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// MaxTicksPerCommand ограничивает пачку тиков в одной команде TICK
const MaxTicksPerCommand = 1000

// TickPayload используется командой TICK. Пустой payload означает один тик.
type TickPayload struct {
	Count int `json:"count"`
}

// RuleView - одно правило таблицы в текстовом виде.
type RuleView struct {
	State  int    `json:"state" jsonschema:"title=State,description=FSM label the rule applies to"`
	Env    string `json:"env" jsonschema:"title=Perceived environment,enum=NOTHING,enum=AGENT,enum=FOOD,enum=WALL"`
	Action string `json:"action" jsonschema:"title=Action,enum=NOP,enum=STEP,enum=EAT,enum=ATTACK"`
	Next   int    `json:"next" jsonschema:"title=Next state"`
}

// BrainPayload используется командой BRAIN: таблица заменяется целиком.
type BrainPayload struct {
	Rules []RuleView `json:"rules"`
}
