package kafka

import (
	"time"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// EventPublisher - минимальный контракт отправки, которому удовлетворяет *Producer.
type EventPublisher interface {
	PublishEvent(topic string, key string, event interface{}) error
}

// OrderEventPublisher - подписчик диспетчера, публикующий каждый переход в Kafka.
// Ключ сообщения - ID заказа, поэтому события одного заказа попадают в одну партицию.
type OrderEventPublisher struct {
	publisher EventPublisher
	topic     string
	now       func() time.Time
}

// NewOrderEventPublisher создаёт подписчика. Пустой topic заменяется TopicOrderEvents.
func NewOrderEventPublisher(publisher EventPublisher, topic string) *OrderEventPublisher {
	if topic == "" {
		topic = TopicOrderEvents
	}
	return &OrderEventPublisher{publisher: publisher, topic: topic, now: time.Now}
}

// Notify реализует notify.Subscriber. Ошибка брокера возвращается вызывающему.
// Время события берётся из зафиксированной записи истории, а не из часов публикатора.
func (p *OrderEventPublisher) Notify(order *domain.Order, from, to domain.OrderStatus) error {
	snap := order.Snapshot()
	at := p.now()
	if n := len(snap.History); n > 0 {
		at = snap.History[n-1].At
	}
	event := NewStatusChangedEvent(snap, from, to, at.UTC())
	return p.publisher.PublishEvent(p.topic, order.ID(), event)
}
