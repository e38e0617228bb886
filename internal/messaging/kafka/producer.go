package kafka

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// HeaderEventType дублирует тип события в заголовке сообщения,
// чтобы потребители могли фильтровать без разбора тела.
const HeaderEventType = "event-type"

// Producer синхронно отправляет события в Kafka: Notify возвращается
// только после подтверждения брокером, и ошибка доходит до диспетчера.
type Producer struct {
	client sarama.SyncProducer
	logger *log.Entry
}

func producerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = "orderflow"
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Retry.Backoff = 200 * time.Millisecond
	cfg.Producer.Idempotent = true
	cfg.Producer.Compression = sarama.CompressionSnappy
	cfg.Net.MaxOpenRequests = 1
	return cfg
}

// NewProducer подключается к брокерам.
func NewProducer(brokers []string, logger *log.Entry) (*Producer, error) {
	client, err := sarama.NewSyncProducer(brokers, producerConfig())
	if err != nil {
		return nil, errors.Wrap(err, "create kafka producer")
	}
	return NewProducerWithClient(client, logger), nil
}

// NewProducerWithClient оборачивает готовый клиент, в тестах mocks.SyncProducer.
func NewProducerWithClient(client sarama.SyncProducer, logger *log.Entry) *Producer {
	if logger == nil {
		logger = log.WithField("component", "kafka-producer")
	}
	return &Producer{client: client, logger: logger}
}

// PublishEvent кодирует event в JSON и отправляет его с ключом key.
func (p *Producer) PublishEvent(topic string, key string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}

	msg := &sarama.ProducerMessage{
		Topic:     topic,
		Key:       sarama.StringEncoder(key),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: time.Now().UTC(),
	}
	if typed, ok := event.(interface{ Type() EventType }); ok {
		msg.Headers = []sarama.RecordHeader{{Key: []byte(HeaderEventType), Value: []byte(typed.Type())}}
	}

	entry := p.logger.WithFields(log.Fields{"topic": topic, "key": key})
	partition, offset, err := p.client.SendMessage(msg)
	if err != nil {
		entry.WithError(err).Error("kafka send failed")
		return errors.Wrapf(err, "send to %s", topic)
	}
	entry.WithFields(log.Fields{"partition": partition, "offset": offset}).Debug("event published")
	return nil
}

// Close освобождает соединения с брокерами.
func (p *Producer) Close() error {
	return errors.Wrap(p.client.Close(), "close kafka producer")
}
