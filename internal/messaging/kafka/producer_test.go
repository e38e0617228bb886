package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

func shippedLaptopOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder("order-123", domain.Customer{ID: "C001", Name: "Indra"}, time.Now())
	if err != nil {
		t.Fatalf("new order: %v", err)
	}
	if err := order.AddItem(domain.Product{ID: "P001", Name: "Laptop", Price: decimal.NewFromInt(60000)}, 1); err != nil {
		t.Fatalf("add item: %v", err)
	}
	if _, err := order.Transition(domain.DefaultTransitions(), domain.OrderStatusPaid, time.Now()); err != nil {
		t.Fatalf("transition: %v", err)
	}
	return order
}

func TestProducer_PublishEvent(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := NewProducerWithClient(mockProducer, log.WithField("component", "kafka-producer-test"))

	mockProducer.ExpectSendMessageAndSucceed()

	event := NewStatusChangedEvent(shippedLaptopOrder(t).Snapshot(), domain.OrderStatusCreated, domain.OrderStatusPaid, time.Now())
	if err := producer.PublishEvent(TopicOrderEvents, "order-123", event); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := producer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_Error(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := NewProducerWithClient(mockProducer, nil)

	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := producer.PublishEvent(TopicOrderEvents, "order-123", map[string]string{"k": "v"})
	if !errors.Is(err, sarama.ErrOutOfBrokers) {
		t.Fatalf("expected ErrOutOfBrokers, got %v", err)
	}

	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_PublishEvent_MarshalError(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	producer := NewProducerWithClient(mockProducer, nil)

	if err := producer.PublishEvent(TopicOrderEvents, "k", make(chan int)); err == nil {
		t.Fatal("expected marshal error")
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestNewStatusChangedEvent(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	event := NewStatusChangedEvent(shippedLaptopOrder(t).Snapshot(), domain.OrderStatusCreated, domain.OrderStatusPaid, at)

	if event.EventType != EventTypeStatusChanged {
		t.Errorf("expected event type %s, got %s", EventTypeStatusChanged, event.EventType)
	}
	if event.OrderID != "order-123" || event.CustomerID != "C001" {
		t.Errorf("unexpected ids: %+v", event)
	}
	if event.From != "created" || event.To != "paid" {
		t.Errorf("unexpected pair %s -> %s", event.From, event.To)
	}
	if event.Total != "60000.00" || event.ItemsCount != 1 {
		t.Errorf("unexpected totals: %s / %d", event.Total, event.ItemsCount)
	}
	if !event.Timestamp.Equal(at) {
		t.Errorf("unexpected timestamp %v", event.Timestamp)
	}
}

func TestOrderEventPublisher_Notify(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "custom.topic" {
			return fmt.Errorf("unexpected topic %s", msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "order-123" {
			return fmt.Errorf("unexpected key %s", key)
		}
		value, _ := msg.Value.Encode()
		var event StatusChangedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return err
		}
		if event.To != "paid" {
			return fmt.Errorf("unexpected target status %s", event.To)
		}
		return nil
	})

	publisher := NewOrderEventPublisher(NewProducerWithClient(mockProducer, nil), "custom.topic")
	if err := publisher.Notify(shippedLaptopOrder(t), domain.OrderStatusCreated, domain.OrderStatusPaid); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOrderEventPublisher_UsesCommittedTransitionTime(t *testing.T) {
	committedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("MSK", 3*60*60))
	order, err := domain.NewOrder("order-7", domain.Customer{ID: "C001", Name: "Indra"}, committedAt.Add(-time.Hour))
	if err != nil {
		t.Fatalf("new order: %v", err)
	}
	if _, err := order.Transition(domain.DefaultTransitions(), domain.OrderStatusPaid, committedAt); err != nil {
		t.Fatalf("transition: %v", err)
	}

	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		value, _ := msg.Value.Encode()
		var event StatusChangedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			return err
		}
		if !event.Timestamp.Equal(committedAt) {
			return fmt.Errorf("expected committed time %v, got %v", committedAt, event.Timestamp)
		}
		if event.Timestamp.Location() != time.UTC {
			return fmt.Errorf("expected UTC timestamp, got %v", event.Timestamp.Location())
		}
		return nil
	})

	publisher := NewOrderEventPublisher(NewProducerWithClient(mockProducer, nil), "")
	publisher.now = func() time.Time { return committedAt.Add(5 * time.Minute) }
	if err := publisher.Notify(order, domain.OrderStatusCreated, domain.OrderStatusPaid); err != nil {
		t.Fatalf("notify failed: %v", err)
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOrderEventPublisher_BrokerFailure(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)

	publisher := NewOrderEventPublisher(NewProducerWithClient(mockProducer, nil), "")
	if publisher.topic != TopicOrderEvents {
		t.Fatalf("expected default topic, got %s", publisher.topic)
	}
	err := publisher.Notify(shippedLaptopOrder(t), domain.OrderStatusCreated, domain.OrderStatusPaid)
	if !errors.Is(err, sarama.ErrNotLeaderForPartition) {
		t.Fatalf("expected broker error, got %v", err)
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestProducer_SetsEventTypeHeader(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, nil)
	mockProducer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if len(msg.Headers) != 1 || string(msg.Headers[0].Key) != HeaderEventType {
			return fmt.Errorf("unexpected headers %+v", msg.Headers)
		}
		if string(msg.Headers[0].Value) != string(EventTypeStatusChanged) {
			return fmt.Errorf("unexpected event type header %s", msg.Headers[0].Value)
		}
		return nil
	})

	event := NewStatusChangedEvent(shippedLaptopOrder(t).Snapshot(), domain.OrderStatusCreated, domain.OrderStatusPaid, time.Now())
	if err := NewProducerWithClient(mockProducer, nil).PublishEvent(TopicOrderEvents, "order-123", event); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := mockProducer.Close(); err != nil {
		t.Fatal(err)
	}
}
