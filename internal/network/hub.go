package network

import (
	"sync"

	"github.com/NagaPranavN/evolol/pkg/api"
	"github.com/NagaPranavN/evolol/pkg/logger"
)

// SubscriberBuffer - размер личного канала подписчика
const SubscriberBuffer = 100

// Broadcaster занимается только рассылкой снимков подписчикам.
// Медленный подписчик теряет снимки, но не тормозит движок.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID подписчика -> Личный канал
	subscribers map[string]chan api.ServerResponse
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
	}
}

// Register создает личный канал для подписчика (адаптера отображения)
func (b *Broadcaster) Register(id string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, SubscriberBuffer)
	b.subscribers[id] = ch
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
	}
}

// SendTo отправляет сообщение конкретному подписчику (Unicast)
func (b *Broadcaster) SendTo(id string, msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[id]; ok {
		select {
		case ch <- msg:
		default:
			logger.Log.WithField("subscriber", id).Debug("Hub: channel full, message dropped")
		}
	}
}

// Broadcast отправляет всем
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
}

// HasSubscriber проверяет, подключен ли подписчик
func (b *Broadcaster) HasSubscriber(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[id]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
