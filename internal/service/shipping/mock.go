package shipping

import (
	"sync"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// MockService - конфигурируемая заглушка ShippingService.
// Выдаёт трек-номер вида TRK-<uuid>.
type MockService struct {
	mu sync.Mutex

	ShipErr   error
	ShipCalls int
	Shipped   []string
}

// NewMockService возвращает mock с успешным сценарием по умолчанию.
func NewMockService() *MockService {
	return &MockService{}
}

// Ship возвращает заранее настроенную ошибку или новый трек-номер.
func (m *MockService) Ship(order domain.OrderSnapshot) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ShipCalls++
	if m.ShipErr != nil {
		return "", m.ShipErr
	}
	m.Shipped = append(m.Shipped, order.ID)
	return "TRK-" + uuid.NewString(), nil
}

var _ domain.ShippingService = (*MockService)(nil)
