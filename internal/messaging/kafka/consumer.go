package kafka

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// consumeRetryBackoff - пауза перед повторным Consume после ошибки группы.
const consumeRetryBackoff = time.Second

// EventHandler получает декодированное событие смены статуса.
type EventHandler func(ctx context.Context, event StatusChangedEvent) error

// Consumer читает события заказов из consumer group и передаёт их обработчику.
//
// Битое сообщение логируется и подтверждается, чтобы не блокировать партицию.
// Сообщение, на котором упал обработчик, не подтверждается и будет прочитано снова.
type Consumer struct {
	group   sarama.ConsumerGroup
	topics  []string
	handler EventHandler
	logger  *log.Entry
	wg      sync.WaitGroup

	retryBackoff time.Duration
}

func consumerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = "orderflow-watch"
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	cfg.Consumer.Return.Errors = true
	return cfg
}

// NewConsumer создаёт consumer group.
func NewConsumer(brokers []string, groupID string, topics []string, handler EventHandler, logger *log.Entry) (*Consumer, error) {
	group, err := sarama.NewConsumerGroup(brokers, groupID, consumerConfig())
	if err != nil {
		return nil, errors.Wrap(err, "create kafka consumer group")
	}
	if logger == nil {
		logger = log.WithField("component", "kafka-consumer")
	}
	return &Consumer{group: group, topics: topics, handler: handler, logger: logger, retryBackoff: consumeRetryBackoff}, nil
}

// Start запускает чтение и сбор ошибок группы в фоне до отмены ctx.
func (c *Consumer) Start(ctx context.Context) error {
	c.wg.Add(2)
	go c.consumeLoop(ctx)
	go c.drainErrors()
	c.logger.WithField("topics", c.topics).Info("kafka consumer started")
	return nil
}

// consumeLoop перезапускает Consume после каждого rebalance.
// После ошибки выжидает retryBackoff, закрытая группа завершает цикл.
func (c *Consumer) consumeLoop(ctx context.Context) {
	defer c.wg.Done()
	backoff := c.retryBackoff
	if backoff <= 0 {
		backoff = consumeRetryBackoff
	}
	for ctx.Err() == nil {
		err := c.group.Consume(ctx, c.topics, c)
		if err == nil {
			continue
		}
		if errors.Is(err, sarama.ErrClosedConsumerGroup) {
			return
		}
		c.logger.WithError(err).WithField("retry_in", backoff).Error("consume failed")

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

func (c *Consumer) drainErrors() {
	defer c.wg.Done()
	for err := range c.group.Errors() {
		c.logger.WithError(err).Warn("consumer group error")
	}
}

// Stop закрывает группу и ждёт фоновые горутины.
func (c *Consumer) Stop() error {
	if err := c.group.Close(); err != nil {
		return errors.Wrap(err, "close kafka consumer group")
	}
	c.wg.Wait()
	c.logger.Info("kafka consumer stopped")
	return nil
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim обрабатывает сообщения одной партиции.
func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	ctx := session.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-claim.Messages():
			if !ok || msg == nil {
				return nil
			}
			if c.handle(ctx, msg) {
				session.MarkMessage(msg, "")
			}
		}
	}
}

// handle возвращает true, если сообщение можно подтвердить.
func (c *Consumer) handle(ctx context.Context, msg *sarama.ConsumerMessage) bool {
	entry := c.logger.WithFields(log.Fields{
		"topic":     msg.Topic,
		"partition": msg.Partition,
		"offset":    msg.Offset,
	})

	event, err := ParseStatusChangedEvent(msg)
	if err != nil {
		entry.WithError(err).Warn("skipping malformed message")
		return true
	}
	if err := c.handler(ctx, event); err != nil {
		entry.WithError(err).WithField("order_id", event.OrderID).Error("event handler failed")
		return false
	}
	return true
}

// ParseStatusChangedEvent декодирует событие смены статуса из сообщения.
func ParseStatusChangedEvent(msg *sarama.ConsumerMessage) (StatusChangedEvent, error) {
	var event StatusChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return StatusChangedEvent{}, errors.Wrap(err, "decode status event")
	}
	if event.EventType != EventTypeStatusChanged {
		return StatusChangedEvent{}, errors.Errorf("unexpected event type %q", event.EventType)
	}
	return event, nil
}
