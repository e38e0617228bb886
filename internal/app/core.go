package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderflow/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orderflow/internal/metrics"
	"github.com/vladislavdragonenkov/orderflow/internal/service/lifecycle"
	"github.com/vladislavdragonenkov/orderflow/internal/service/notification"
	"github.com/vladislavdragonenkov/orderflow/internal/service/shipping"
)

// Имена подписчиков; попадают в логи и метрику subscriber_failures.
const (
	SubscriberCustomerNotifier = "customer-notifier"
	SubscriberShipping         = "shipping"
	SubscriberKafka            = "kafka"
)

// newCore собирает ядро и подписывает стандартных получателей в фиксированном порядке:
// уведомление клиента, запуск доставки, публикация в Kafka (если publisher задан).
func newCore(deps *Dependencies, cfg Config, publisher kafka.EventPublisher, m *metrics.OrderMetrics) *lifecycle.Service {
	logger := deps.Logger
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	opts := []lifecycle.Option{lifecycle.WithTransitionRules(cfg.TransitionRules())}
	if m != nil {
		opts = append(opts, lifecycle.WithMetrics(m))
	}
	core := lifecycle.NewService(deps.Orders, deps.Products, deps.Customers, nil, logger.WithField("layer", "lifecycle"), opts...)

	notifier := notification.NewCustomerNotifier(notification.NewLogSender(logger.WithField("layer", "notification")))
	core.Subscribe(SubscriberCustomerNotifier, notifier.Notify)

	trigger := shipping.NewTrigger(shipping.NewMockService(), logger.WithField("layer", "shipping"))
	core.Subscribe(SubscriberShipping, trigger.Notify)

	if publisher != nil {
		core.Subscribe(SubscriberKafka, kafka.NewOrderEventPublisher(publisher, cfg.KafkaTopic).Notify)
	}
	return core
}
