package notify_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
	"github.com/vladislavdragonenkov/orderflow/internal/notify"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type call struct {
	name     string
	orderID  string
	from, to domain.OrderStatus
	seen     domain.OrderStatus
}

func loggerForTests() *logrus.Entry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.DebugLevel)
	return logger.WithField("component", "test")
}

func newPaidOrder(t *testing.T) *domain.Order {
	t.Helper()
	order, err := domain.NewOrder("order-1", domain.Customer{ID: "c-1", Name: "Indra"}, time.Now())
	require.NoError(t, err)
	_, err = order.Transition(domain.DefaultTransitions(), domain.OrderStatusPaid, time.Now())
	require.NoError(t, err)
	return order
}

func recorder(name string, calls *[]call) notify.Subscriber {
	return func(order *domain.Order, from, to domain.OrderStatus) error {
		*calls = append(*calls, call{name: name, orderID: order.ID(), from: from, to: to, seen: order.Status()})
		return nil
	}
}

func TestDispatcher_InvokesInRegistrationOrder(t *testing.T) {
	d := notify.NewDispatcher(loggerForTests())
	var calls []call
	d.Subscribe("first", recorder("first", &calls))
	d.Subscribe("second", recorder("second", &calls))

	order := newPaidOrder(t)
	require.NoError(t, d.Dispatch(order, domain.OrderStatusCreated, domain.OrderStatusPaid))

	require.Len(t, calls, 2)
	assert.Equal(t, "first", calls[0].name)
	assert.Equal(t, "second", calls[1].name)
	for _, c := range calls {
		assert.Equal(t, "order-1", c.orderID)
		assert.Equal(t, domain.OrderStatusCreated, c.from)
		assert.Equal(t, domain.OrderStatusPaid, c.to)
		assert.Equal(t, domain.OrderStatusPaid, c.seen)
	}
	assert.Equal(t, []string{"first", "second"}, d.Names())
}

func TestDispatcher_DuplicateSubscriptionInvokedTwice(t *testing.T) {
	d := notify.NewDispatcher(nil)
	var calls []call
	fn := recorder("dup", &calls)
	d.Subscribe("dup", fn)
	d.Subscribe("dup", fn)

	require.NoError(t, d.Dispatch(newPaidOrder(t), domain.OrderStatusCreated, domain.OrderStatusPaid))
	assert.Len(t, calls, 2)
	assert.Equal(t, 2, d.Len())
}

func TestDispatcher_FailFast(t *testing.T) {
	d := notify.NewDispatcher(loggerForTests())
	var calls []call
	cause := errors.New("mailbox full")
	d.Subscribe("first", recorder("first", &calls))
	d.Subscribe("broken", func(*domain.Order, domain.OrderStatus, domain.OrderStatus) error { return cause })
	d.Subscribe("third", recorder("third", &calls))

	err := d.Dispatch(newPaidOrder(t), domain.OrderStatusCreated, domain.OrderStatusPaid)

	require.ErrorIs(t, err, domain.ErrSubscriberFailure)
	require.ErrorIs(t, err, cause)
	var subErr *domain.SubscriberError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, "broken", subErr.Subscriber)
	assert.Equal(t, 1, subErr.Position)
	require.Len(t, calls, 1)
	assert.Equal(t, "first", calls[0].name)
}

func TestDispatcher_PanicBecomesSubscriberError(t *testing.T) {
	d := notify.NewDispatcher(loggerForTests())
	d.Subscribe("panicky", func(*domain.Order, domain.OrderStatus, domain.OrderStatus) error {
		panic("boom")
	})

	err := d.Dispatch(newPaidOrder(t), domain.OrderStatusCreated, domain.OrderStatusPaid)

	require.ErrorIs(t, err, domain.ErrSubscriberFailure)
	assert.Contains(t, err.Error(), "panic: boom")
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := notify.NewDispatcher(nil)
	var calls []call
	d.Subscribe("a", recorder("a", &calls))
	id := d.Subscribe("b", recorder("b", &calls))
	d.Subscribe("c", recorder("c", &calls))

	assert.True(t, d.Unsubscribe(id))
	assert.False(t, d.Unsubscribe(id))

	require.NoError(t, d.Dispatch(newPaidOrder(t), domain.OrderStatusCreated, domain.OrderStatusPaid))
	require.Len(t, calls, 2)
	assert.Equal(t, "a", calls[0].name)
	assert.Equal(t, "c", calls[1].name)
}

func TestDispatcher_NoSubscribers(t *testing.T) {
	d := notify.NewDispatcher(nil)
	assert.NoError(t, d.Dispatch(newPaidOrder(t), domain.OrderStatusCreated, domain.OrderStatusPaid))
}
