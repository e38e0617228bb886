package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// orderRepositoryInMemory - реестр заказов текущего процесса.
// Хранит указатели: заказ сам защищает своё состояние.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items map[string]*domain.Order
	order []string
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)

// NewOrderRepository возвращает in-memory реестр заказов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{
		items: make(map[string]*domain.Order),
	}
}

// Create регистрирует заказ, если ID ещё не занят.
func (r *orderRepositoryInMemory) Create(order *domain.Order) error {
	if order == nil || order.ID() == "" {
		return domain.ErrOrderIDRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[order.ID()]; exists {
		return domain.ErrOrderAlreadyExists
	}
	r.items[order.ID()] = order
	r.order = append(r.order, order.ID())
	return nil
}

// Get возвращает заказ или ErrOrderNotFound.
func (r *orderRepositoryInMemory) Get(id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// List возвращает заказы в порядке регистрации.
func (r *orderRepositoryInMemory) List() ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Order, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.items[id])
	}
	return result, nil
}
