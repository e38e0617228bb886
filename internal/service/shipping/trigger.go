// Package shipping передаёт заказ в логистику, когда он переходит в Shipped.
package shipping

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// Trigger - подписчик, вызывающий ShippingService на переходе в Shipped.
type Trigger struct {
	service domain.ShippingService
	logger  *log.Entry
}

// NewTrigger создаёт подписчика поверх service.
func NewTrigger(service domain.ShippingService, logger *log.Entry) *Trigger {
	if logger == nil {
		logger = log.New().WithField("component", "shipping")
	}
	return &Trigger{service: service, logger: logger}
}

// Notify реализует notify.Subscriber. Остальные переходы игнорируются.
func (t *Trigger) Notify(order *domain.Order, _, to domain.OrderStatus) error {
	if to != domain.OrderStatusShipped {
		return nil
	}

	tracking, err := t.service.Ship(order.Snapshot())
	if err != nil {
		return fmt.Errorf("ship order %s: %w", order.ID(), err)
	}
	t.logger.WithFields(log.Fields{
		"order_id":    order.ID(),
		"tracking_id": tracking,
	}).Info("order handed over to shipping")
	return nil
}
