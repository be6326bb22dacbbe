package domain

import "encoding/json"

// InternalCommand - распарсенная команда для сервиса.
// Использует CommandType вместо string.
type InternalCommand struct {
	Type    CommandType     // Число! Быстро и безопасно.
	Source  string          // ID подписчика, приславшего команду
	Payload json.RawMessage // Сырые данные (парсятся обработчиком команды)
}
