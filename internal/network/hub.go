package network

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/thoxyHub/JavIsland/pkg/api"
	"github.com/thoxyHub/JavIsland/pkg/logger"
)

// SubscriberBuffer - глубина личного канала подписчика
const SubscriberBuffer = 100

// Broadcaster занимается только рассылкой снимков подписчикам.
// Отправка никогда не блокирует цикл симуляции: медленный подписчик теряет сообщения.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: ID подписчика -> Личный канал
	subscribers map[string]chan api.ServerResponse
	dropped     map[string]int
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.ServerResponse),
		dropped:     make(map[string]int),
	}
}

// Register создает личный канал подписчика
func (b *Broadcaster) Register(id string) chan api.ServerResponse {
	b.mu.Lock()
	defer b.mu.Unlock()

	// Если канал был, закрываем
	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.ServerResponse, SubscriberBuffer)
	b.subscribers[id] = ch
	b.dropped[id] = 0
	return ch
}

// Unregister удаляет подписчика
func (b *Broadcaster) Unregister(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
		delete(b.dropped, id)
	}
}

// SendTo отправляет сообщение конкретному подписчику (Unicast)
func (b *Broadcaster) SendTo(id string, msg api.ServerResponse) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch, ok := b.subscribers[id]
	if !ok {
		return false
	}
	return b.offer(id, ch, msg)
}

// Broadcast отправляет всем
func (b *Broadcaster) Broadcast(msg api.ServerResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.subscribers {
		b.offer(id, ch, msg)
	}
}

// offer вызывается под b.mu
func (b *Broadcaster) offer(id string, ch chan api.ServerResponse, msg api.ServerResponse) bool {
	select {
	case ch <- msg:
		return true
	default:
		b.dropped[id]++
		if b.dropped[id] == 1 || b.dropped[id]%SubscriberBuffer == 0 {
			logger.Log.WithFields(logrus.Fields{
				"component":  "broadcaster",
				"subscriber": id,
				"dropped":    b.dropped[id],
			}).Warn("Subscriber channel full, message dropped")
		}
		return false
	}
}

// HasSubscriber проверяет, подключён ли кто-то с таким ID
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
