package domain

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	// Product разделяется с каталогом и позицией не изменяется.
	Product Product
	// Quantity - количество единиц товара, всегда больше нуля.
	Quantity int
}

// LineTotal считает стоимость позиции при каждом вызове: цена * количество.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// StatusChange фиксирует принятый переход. Записи только добавляются.
type StatusChange struct {
	From OrderStatus
	To   OrderStatus
	At   time.Time
}

// Order агрегирует статус, позиции и историю смены статусов.
// Проверка перехода, запись статуса и добавление в историю выполняются под одним mutex.
type Order struct {
	mu sync.RWMutex

	id        string
	customer  Customer
	status    OrderStatus
	items     []OrderItem
	history   []StatusChange
	createdAt time.Time
}

// OrderSnapshot - согласованная копия заказа для чтения.
type OrderSnapshot struct {
	ID        string
	Customer  Customer
	Status    OrderStatus
	Items     []OrderItem
	History   []StatusChange
	CreatedAt time.Time
}

// NewOrder создаёт заказ в статусе Created без позиций и с пустой историей.
func NewOrder(id string, customer Customer, createdAt time.Time) (*Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrOrderIDRequired
	}
	if customer.ID == "" {
		return nil, ErrCustomerRequired
	}
	return &Order{
		id:        id,
		customer:  customer,
		status:    OrderStatusCreated,
		createdAt: createdAt,
	}, nil
}

// ID возвращает идентификатор заказа.
func (o *Order) ID() string { return o.id }

// Customer возвращает владельца заказа.
func (o *Order) Customer() Customer { return o.customer }

// CreatedAt возвращает момент создания заказа.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Status возвращает текущий статус.
func (o *Order) Status() OrderStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

// Items возвращает копию позиций в порядке добавления.
func (o *Order) Items() []OrderItem {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]OrderItem(nil), o.items...)
}

// History возвращает копию истории в хронологическом порядке.
func (o *Order) History() []StatusChange {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return append([]StatusChange(nil), o.history...)
}

// AddItem добавляет позицию в конец списка. Одинаковые товары не склеиваются.
func (o *Order) AddItem(product Product, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if product.ID == "" {
		return ErrProductIDRequired
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.items = append(o.items, OrderItem{Product: product, Quantity: quantity})
	return nil
}

// CalculateTotal суммирует позиции; значение не кэшируется.
func (o *Order) CalculateTotal() decimal.Decimal {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return sumItems(o.items)
}

// Transition применяет переход по таблице rules. При недопустимой паре
// возвращает *TransitionError и ничего не меняет.
func (o *Order) Transition(rules TransitionRules, target OrderStatus, at time.Time) (StatusChange, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !rules.Allows(o.status, target) {
		return StatusChange{}, &TransitionError{From: o.status, To: target}
	}

	change := StatusChange{From: o.status, To: target, At: at}
	o.status = target
	o.history = append(o.history, change)
	return change, nil
}

// Snapshot возвращает копию состояния, снятую под одной блокировкой.
func (o *Order) Snapshot() OrderSnapshot {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return OrderSnapshot{
		ID:        o.id,
		Customer:  o.customer,
		Status:    o.status,
		Items:     append([]OrderItem(nil), o.items...),
		History:   append([]StatusChange(nil), o.history...),
		CreatedAt: o.createdAt,
	}
}

// Total суммирует позиции снимка.
func (s OrderSnapshot) Total() decimal.Decimal {
	return sumItems(s.Items)
}

// ValidateInvariants проверяет согласованность истории и статуса.
func (s OrderSnapshot) ValidateInvariants() []error {
	var errs []error
	if len(s.History) == 0 {
		if s.Status != OrderStatusCreated {
			errs = append(errs, fmt.Errorf("status %s without history", s.Status))
		}
	} else if last := s.History[len(s.History)-1]; last.To != s.Status {
		errs = append(errs, fmt.Errorf("history ends with %s, status is %s", last.To, s.Status))
	}
	for _, item := range s.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrInvalidQuantity)
		}
	}
	return errs
}

func sumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total
}
