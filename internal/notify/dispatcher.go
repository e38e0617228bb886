// Package notify рассылает принятые переходы статусов зарегистрированным подписчикам.
package notify

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// Subscriber получает заказ уже в новом статусе вместе с парой (from, to).
// Ненулевая ошибка прерывает рассылку для текущего перехода.
type Subscriber func(order *domain.Order, from, to domain.OrderStatus) error

// SubscriptionID - дескриптор подписки, нужен для отписки.
type SubscriptionID uint64

type subscription struct {
	id   SubscriptionID
	name string
	fn   Subscriber
}

// Dispatcher хранит упорядоченный список подписчиков и вызывает их синхронно,
// в порядке регистрации, в горутине вызывающего.
type Dispatcher struct {
	mu     sync.RWMutex
	subs   []subscription
	nextID SubscriptionID
	logger *log.Entry
}

// NewDispatcher создаёт пустой диспетчер.
func NewDispatcher(logger *log.Entry) *Dispatcher {
	if logger == nil {
		logger = log.New().WithField("component", "dispatcher")
	}
	return &Dispatcher{logger: logger}
}

// Subscribe добавляет подписчика в конец списка. Повторная регистрация той же
// функции даёт второй вызов на каждый переход.
func (d *Dispatcher) Subscribe(name string, fn Subscriber) SubscriptionID {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	d.subs = append(d.subs, subscription{id: d.nextID, name: name, fn: fn})
	d.logger.WithFields(log.Fields{
		"subscriber":      name,
		"subscription_id": d.nextID,
	}).Debug("subscriber registered")
	return d.nextID
}

// Unsubscribe удаляет подписку, сохраняя порядок остальных.
func (d *Dispatcher) Unsubscribe(id SubscriptionID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, s := range d.subs {
		if s.id != id {
			continue
		}
		d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
		return true
	}
	return false
}

// Len возвращает количество подписок.
func (d *Dispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.subs)
}

// Names возвращает имена подписчиков в порядке вызова.
func (d *Dispatcher) Names() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.subs))
	for _, s := range d.subs {
		names = append(names, s.name)
	}
	return names
}

// Dispatch вызывает подписчиков по очереди. Первая ошибка (или паника)
// останавливает рассылку и возвращается как *domain.SubscriberError.
func (d *Dispatcher) Dispatch(order *domain.Order, from, to domain.OrderStatus) error {
	d.mu.RLock()
	subs := append([]subscription(nil), d.subs...)
	d.mu.RUnlock()

	for i, s := range subs {
		if err := invoke(s.fn, order, from, to); err != nil {
			d.logger.WithError(err).WithFields(log.Fields{
				"order_id":   order.ID(),
				"subscriber": s.name,
				"position":   i,
				"from":       from,
				"to":         to,
				"skipped":    len(subs) - i - 1,
			}).Warn("subscriber failed, dispatch interrupted")
			return &domain.SubscriberError{Subscriber: s.name, Position: i, Err: err}
		}
	}
	return nil
}

func invoke(fn Subscriber, order *domain.Order, from, to domain.OrderStatus) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(order, from, to)
}
