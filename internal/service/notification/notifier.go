// Package notification сообщает клиенту о смене статуса его заказа.
package notification

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// Message - уведомление для клиента.
type Message struct {
	OrderID   string
	Recipient string
	Subject   string
	Body      string
}

// Sender доставляет сообщение клиенту.
type Sender interface {
	Send(msg Message) error
}

// LogSender пишет сообщения в лог вместо реальной отправки.
type LogSender struct {
	logger *log.Entry
}

// NewLogSender создаёт отправителя поверх logrus.
func NewLogSender(logger *log.Entry) *LogSender {
	if logger == nil {
		logger = log.New().WithField("component", "notification")
	}
	return &LogSender{logger: logger}
}

// Send логирует сообщение на уровне info.
func (s *LogSender) Send(msg Message) error {
	s.logger.WithFields(log.Fields{
		"order_id":  msg.OrderID,
		"recipient": msg.Recipient,
		"subject":   msg.Subject,
	}).Info(msg.Body)
	return nil
}

// CustomerNotifier - подписчик, отправляющий клиенту сообщение на каждый переход.
type CustomerNotifier struct {
	sender Sender
}

// NewCustomerNotifier создаёт подписчика.
func NewCustomerNotifier(sender Sender) *CustomerNotifier {
	return &CustomerNotifier{sender: sender}
}

// Notify реализует notify.Subscriber.
func (n *CustomerNotifier) Notify(order *domain.Order, from, to domain.OrderStatus) error {
	customer := order.Customer()
	msg := Message{
		OrderID:   order.ID(),
		Recipient: customer.Address,
		Subject:   fmt.Sprintf("Order %s: %s", order.ID(), to.Title()),
		Body:      bodyFor(customer.Name, order.ID(), from, to),
	}
	if err := n.sender.Send(msg); err != nil {
		return fmt.Errorf("notify customer %s: %w", customer.ID, err)
	}
	return nil
}

func bodyFor(name, orderID string, from, to domain.OrderStatus) string {
	switch to {
	case domain.OrderStatusPaid:
		return fmt.Sprintf("Hi %s, payment for order %s has been received.", name, orderID)
	case domain.OrderStatusPacked:
		return fmt.Sprintf("Hi %s, order %s is packed and waiting for the courier.", name, orderID)
	case domain.OrderStatusShipped:
		return fmt.Sprintf("Hi %s, order %s is on its way.", name, orderID)
	case domain.OrderStatusDelivered:
		return fmt.Sprintf("Hi %s, order %s has been delivered.", name, orderID)
	case domain.OrderStatusCancelled:
		return fmt.Sprintf("Hi %s, order %s has been cancelled.", name, orderID)
	default:
		return fmt.Sprintf("Hi %s, order %s moved from %s to %s.", name, orderID, from.Title(), to.Title())
	}
}
