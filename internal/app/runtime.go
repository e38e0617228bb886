package app

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderflow/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/orderflow/internal/metrics"
	"github.com/vladislavdragonenkov/orderflow/internal/service/lifecycle"
)

// Runtime - собранное ядро вместе с ресурсами, которые нужно освободить.
// Используется и сервисом, и консольным клиентом.
type Runtime struct {
	Core     *lifecycle.Service
	deps     *Dependencies
	producer *kafka.Producer
	logger   *log.Entry
}

// NewRuntime поднимает каталог, Kafka producer (если заданы брокеры) и ядро с подписчиками.
// Недоступная Kafka не фатальна: ядро работает без публикации событий.
func NewRuntime(ctx context.Context, cfg Config, logger *log.Entry, m *metrics.OrderMetrics) (*Runtime, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}
	deps, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	var publisher kafka.EventPublisher
	producer, err := initKafkaProducer(cfg.KafkaBrokers, logger)
	if err == nil && producer != nil {
		publisher = producer
	}

	return &Runtime{
		Core:     newCore(deps, cfg, publisher, m),
		deps:     deps,
		producer: producer,
		logger:   logger,
	}, nil
}

// Close закрывает producer и подключение к каталогу.
func (r *Runtime) Close() {
	if r == nil {
		return
	}
	closeKafka(r.producer, r.logger)
	r.deps.Close()
}
