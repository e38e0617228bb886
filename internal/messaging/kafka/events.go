package kafka

import (
	"time"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// EventType определяет тип события
type EventType string

// EventTypeStatusChanged публикуется на каждый принятый переход статуса.
const EventTypeStatusChanged EventType = "order.status_changed"

// TopicOrderEvents - топик по умолчанию для событий заказов.
const TopicOrderEvents = "orderflow.order.events"

// StatusChangedEvent - событие смены статуса заказа.
// Сумма передаётся строкой, чтобы не терять точность decimal.
type StatusChangedEvent struct {
	EventType  EventType `json:"event_type"`
	OrderID    string    `json:"order_id"`
	CustomerID string    `json:"customer_id"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	Total      string    `json:"total"`
	ItemsCount int       `json:"items_count"`
	Timestamp  time.Time `json:"timestamp"`
}

// Type возвращает тип события для заголовка сообщения.
func (e *StatusChangedEvent) Type() EventType { return e.EventType }

// NewStatusChangedEvent собирает событие по снимку заказа.
func NewStatusChangedEvent(order domain.OrderSnapshot, from, to domain.OrderStatus, at time.Time) *StatusChangedEvent {
	return &StatusChangedEvent{
		EventType:  EventTypeStatusChanged,
		OrderID:    order.ID,
		CustomerID: order.Customer.ID,
		From:       string(from),
		To:         string(to),
		Total:      order.Total().StringFixed(2),
		ItemsCount: len(order.Items),
		Timestamp:  at,
	}
}
