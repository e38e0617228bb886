package kafka

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/IBM/sarama"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGroup реализует sarama.ConsumerGroup поверх функции consume.
type fakeGroup struct {
	consume  func(ctx context.Context) error
	errs     chan error
	closeErr error
	calls    atomic.Int32
}

func newFakeGroup(consume func(ctx context.Context) error) *fakeGroup {
	return &fakeGroup{consume: consume, errs: make(chan error, 1)}
}

func (g *fakeGroup) Consume(ctx context.Context, _ []string, _ sarama.ConsumerGroupHandler) error {
	g.calls.Add(1)
	return g.consume(ctx)
}
func (g *fakeGroup) Errors() <-chan error { return g.errs }
func (g *fakeGroup) Close() error {
	close(g.errs)
	return g.closeErr
}
func (g *fakeGroup) Pause(map[string][]int32)  {}
func (g *fakeGroup) Resume(map[string][]int32) {}
func (g *fakeGroup) PauseAll()                 {}
func (g *fakeGroup) ResumeAll()                {}

// fakeSession запоминает подтверждённые оффсеты.
type fakeSession struct {
	sarama.ConsumerGroupSession
	ctx    context.Context
	marked []int64
}

func (s *fakeSession) Context() context.Context { return s.ctx }
func (s *fakeSession) MarkMessage(msg *sarama.ConsumerMessage, _ string) {
	s.marked = append(s.marked, msg.Offset)
}

type fakeClaim struct {
	sarama.ConsumerGroupClaim
	messages chan *sarama.ConsumerMessage
}

func (c *fakeClaim) Messages() <-chan *sarama.ConsumerMessage { return c.messages }

func claimOf(values ...string) *fakeClaim {
	ch := make(chan *sarama.ConsumerMessage, len(values))
	for i, v := range values {
		ch <- &sarama.ConsumerMessage{Topic: TopicOrderEvents, Offset: int64(i + 1), Value: []byte(v)}
	}
	close(ch)
	return &fakeClaim{messages: ch}
}

func testConsumer(handler EventHandler) *Consumer {
	logger := log.New()
	logger.SetLevel(log.PanicLevel)
	return &Consumer{handler: handler, logger: logger.WithField("component", "test")}
}

const paidEvent = `{"event_type":"order.status_changed","order_id":"o-1","customer_id":"C001","from":"created","to":"paid","total":"61000.00","items_count":2}`

func TestNewConsumer_Unreachable(t *testing.T) {
	_, err := NewConsumer([]string{"127.0.0.1:1"}, "group", []string{TopicOrderEvents}, nil, nil)
	assert.Error(t, err)
}

func TestConsumer_StartStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group := newFakeGroup(func(ctx context.Context) error {
		cancel()
		return errors.New("rebalance")
	})
	group.errs <- errors.New("background")

	c := testConsumer(nil)
	c.group = group
	require.NoError(t, c.Start(ctx))

	require.Eventually(t, func() bool { return group.calls.Load() > 0 }, time.Second, 5*time.Millisecond)
	require.NoError(t, c.Stop())
}

func TestConsumer_BacksOffAfterConsumeError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	group := newFakeGroup(func(context.Context) error { return errors.New("broker down") })
	c := testConsumer(nil)
	c.group = group
	c.retryBackoff = 40 * time.Millisecond
	require.NoError(t, c.Start(ctx))

	time.Sleep(60 * time.Millisecond)
	calls := group.calls.Load()
	assert.GreaterOrEqual(t, calls, int32(1))
	assert.LessOrEqual(t, calls, int32(3), "consume must not be retried in a tight loop")

	cancel()
	require.NoError(t, c.Stop())
	assert.LessOrEqual(t, group.calls.Load(), calls+1)
}

func TestConsumer_ExitsOnClosedGroup(t *testing.T) {
	group := newFakeGroup(func(context.Context) error { return sarama.ErrClosedConsumerGroup })
	c := testConsumer(nil)
	c.group = group
	c.retryBackoff = time.Hour
	require.NoError(t, c.Start(context.Background()))

	require.Eventually(t, func() bool { return group.calls.Load() > 0 }, time.Second, 5*time.Millisecond)
	require.NoError(t, c.Stop())
	assert.Equal(t, int32(1), group.calls.Load())
}

func TestConsumer_StopError(t *testing.T) {
	group := newFakeGroup(nil)
	group.closeErr = errors.New("close failed")

	c := testConsumer(nil)
	c.group = group
	assert.ErrorContains(t, c.Stop(), "close failed")
}

func TestConsumeClaim_MarksHandledAndMalformed(t *testing.T) {
	var got []StatusChangedEvent
	c := testConsumer(func(_ context.Context, e StatusChangedEvent) error {
		got = append(got, e)
		return nil
	})
	session := &fakeSession{ctx: context.Background()}

	require.NoError(t, c.ConsumeClaim(session, claimOf(paidEvent, "{", `{"event_type":"other"}`)))

	assert.Equal(t, []int64{1, 2, 3}, session.marked)
	require.Len(t, got, 1)
	assert.Equal(t, "o-1", got[0].OrderID)
	assert.Equal(t, "paid", got[0].To)
}

func TestConsumeClaim_HandlerFailureLeavesOffset(t *testing.T) {
	c := testConsumer(func(context.Context, StatusChangedEvent) error { return errors.New("down") })
	session := &fakeSession{ctx: context.Background()}

	require.NoError(t, c.ConsumeClaim(session, claimOf(paidEvent)))
	assert.Empty(t, session.marked)
}

func TestConsumeClaim_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	c := testConsumer(func(context.Context, StatusChangedEvent) error { return nil })
	session := &fakeSession{ctx: ctx}
	claim := &fakeClaim{messages: make(chan *sarama.ConsumerMessage)}

	done := make(chan error, 1)
	go func() { done <- c.ConsumeClaim(session, claim) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("ConsumeClaim ignored cancellation")
	}
}

func TestParseStatusChangedEvent(t *testing.T) {
	event, err := ParseStatusChangedEvent(&sarama.ConsumerMessage{Value: []byte(paidEvent)})
	require.NoError(t, err)
	assert.Equal(t, EventTypeStatusChanged, event.EventType)
	assert.Equal(t, "61000.00", event.Total)
	assert.Equal(t, 2, event.ItemsCount)

	_, err = ParseStatusChangedEvent(&sarama.ConsumerMessage{Value: []byte("{")})
	assert.ErrorContains(t, err, "decode status event")

	_, err = ParseStatusChangedEvent(&sarama.ConsumerMessage{Value: []byte(`{"event_type":"order.created"}`)})
	assert.ErrorContains(t, err, "unexpected event type")
}
