// Package lifecycle связывает заказ, таблицу переходов, диспетчер подписчиков и отчёт.
package lifecycle

import (
	"errors"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
	"github.com/vladislavdragonenkov/orderflow/internal/metrics"
	"github.com/vladislavdragonenkov/orderflow/internal/notify"
	"github.com/vladislavdragonenkov/orderflow/internal/report"
)

// Service - точка входа в жизненный цикл заказа.
type Service struct {
	orders     domain.OrderRepository
	products   domain.ProductCatalog
	customers  domain.CustomerCatalog
	dispatcher *notify.Dispatcher
	rules      domain.TransitionRules
	now        func() time.Time
	logger     *log.Entry
	metrics    *metrics.OrderMetrics
}

// Option настраивает Service.
type Option func(*Service)

// WithTransitionRules заменяет таблицу переходов по умолчанию.
func WithTransitionRules(rules domain.TransitionRules) Option {
	return func(s *Service) { s.rules = rules }
}

// WithClock подменяет источник времени для записей истории.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMetrics включает prometheus-метрики.
func WithMetrics(m *metrics.OrderMetrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService создаёт сервис. Без опций используется DefaultTransitions и time.Now.
func NewService(
	orders domain.OrderRepository,
	products domain.ProductCatalog,
	customers domain.CustomerCatalog,
	dispatcher *notify.Dispatcher,
	logger *log.Entry,
	opts ...Option,
) *Service {
	if logger == nil {
		logger = log.New().WithField("component", "lifecycle")
	}
	if dispatcher == nil {
		dispatcher = notify.NewDispatcher(logger.WithField("component", "dispatcher"))
	}
	s := &Service{
		orders:     orders,
		products:   products,
		customers:  customers,
		dispatcher: dispatcher,
		rules:      domain.DefaultTransitions(),
		now:        time.Now,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rules возвращает действующую таблицу переходов.
func (s *Service) Rules() domain.TransitionRules { return s.rules }

// Subscribe регистрирует подписчика на принятые переходы.
func (s *Service) Subscribe(name string, fn notify.Subscriber) notify.SubscriptionID {
	return s.dispatcher.Subscribe(name, fn)
}

// Unsubscribe снимает подписку.
func (s *Service) Unsubscribe(id notify.SubscriptionID) bool {
	return s.dispatcher.Unsubscribe(id)
}

// CreateOrder создаёт заказ в статусе Created и регистрирует его в реестре.
// Пустой orderID заменяется сгенерированным UUID.
func (s *Service) CreateOrder(orderID string, customer domain.Customer) (*domain.Order, error) {
	if orderID == "" {
		orderID = uuid.NewString()
	}
	order, err := domain.NewOrder(orderID, customer, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.orders.Create(order); err != nil {
		s.logger.WithError(err).WithField("order_id", orderID).Warn("order registration failed")
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.RecordOrderCreated(string(order.Status()))
	}
	s.logger.WithFields(log.Fields{
		"order_id":    order.ID(),
		"customer_id": customer.ID,
	}).Info("order created")
	return order, nil
}

// CreateOrderForCustomer находит клиента в каталоге и создаёт для него заказ.
func (s *Service) CreateOrderForCustomer(orderID, customerID string) (*domain.Order, error) {
	customer, err := s.customers.GetCustomer(customerID)
	if err != nil {
		return nil, err
	}
	return s.CreateOrder(orderID, customer)
}

// AddItem добавляет позицию. Количество <= 0 отклоняется без изменения заказа.
func (s *Service) AddItem(order *domain.Order, product domain.Product, quantity int) error {
	if err := order.AddItem(product, quantity); err != nil {
		if s.metrics != nil {
			s.metrics.RecordItemRejected()
		}
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id":   order.ID(),
			"product_id": product.ID,
			"quantity":   quantity,
		}).Warn("item rejected")
		return err
	}

	if s.metrics != nil {
		s.metrics.RecordItemAdded()
	}
	s.logger.WithFields(log.Fields{
		"order_id":   order.ID(),
		"product_id": product.ID,
		"quantity":   quantity,
	}).Debug("item added")
	return nil
}

// AddItemByID находит заказ и товар по идентификаторам и добавляет позицию.
func (s *Service) AddItemByID(orderID, productID string, quantity int) (*domain.Order, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	if err := s.AddItem(order, product, quantity); err != nil {
		return nil, err
	}
	return order, nil
}

// RequestTransition переводит заказ в target.
//
// Недопустимая пара: (false, текущий статус, *domain.TransitionError), заказ не меняется.
// Принятый переход: (true, прежний статус, nil), после чего подписчики вызываются
// синхронно. Если подписчик упал, переход остаётся зафиксированным, а ошибка
// возвращается как *domain.SubscriberError вместе с accepted=true.
func (s *Service) RequestTransition(order *domain.Order, target domain.OrderStatus) (bool, domain.OrderStatus, error) {
	change, err := order.Transition(s.rules, target, s.now().UTC())
	if err != nil {
		// From в ошибке прочитан под той же блокировкой, что и проверка пары.
		current := order.Status()
		var trErr *domain.TransitionError
		if errors.As(err, &trErr) {
			current = trErr.From
		}
		if s.metrics != nil {
			s.metrics.RecordTransitionRejected(string(current), string(target))
		}
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id": order.ID(),
			"from":     current,
			"to":       target,
		}).Warn("transition rejected")
		return false, current, err
	}

	if s.metrics != nil {
		s.metrics.RecordTransition(string(change.From), string(change.To))
	}
	s.logger.WithFields(log.Fields{
		"order_id": order.ID(),
		"from":     change.From,
		"to":       change.To,
	}).Info("order status changed")

	start := time.Now()
	dispatchErr := s.dispatcher.Dispatch(order, change.From, change.To)
	if s.metrics != nil {
		s.metrics.RecordDispatchDuration(time.Since(start))
	}
	if dispatchErr != nil {
		if s.metrics != nil {
			var subErr *domain.SubscriberError
			if errors.As(dispatchErr, &subErr) {
				s.metrics.RecordSubscriberFailure(subErr.Subscriber)
			}
		}
		return true, change.From, dispatchErr
	}
	return true, change.From, nil
}

// TransitionByID находит заказ и запрашивает переход.
func (s *Service) TransitionByID(orderID string, target domain.OrderStatus) (*domain.Order, domain.OrderStatus, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return nil, "", err
	}
	_, old, err := s.RequestTransition(order, target)
	return order, old, err
}

// GenerateReport возвращает текстовый отчёт; заказ не изменяется.
func (s *Service) GenerateReport(order *domain.Order) string {
	return report.Generate(order)
}

// ReportByID строит отчёт по ID заказа.
func (s *Service) ReportByID(orderID string) (string, error) {
	order, err := s.orders.Get(orderID)
	if err != nil {
		return "", err
	}
	return s.GenerateReport(order), nil
}

// Order возвращает заказ из реестра.
func (s *Service) Order(orderID string) (*domain.Order, error) {
	return s.orders.Get(orderID)
}

// Orders возвращает все заказы в порядке создания.
func (s *Service) Orders() ([]*domain.Order, error) {
	return s.orders.List()
}

// Products возвращает каталог товаров.
func (s *Service) Products() ([]domain.Product, error) {
	return s.products.ListProducts()
}

// Customers возвращает список клиентов.
func (s *Service) Customers() ([]domain.Customer, error) {
	return s.customers.ListCustomers()
}

// Product ищет товар по ID.
func (s *Service) Product(id string) (domain.Product, error) {
	return s.products.GetProduct(id)
}

// Customer ищет клиента по ID.
func (s *Service) Customer(id string) (domain.Customer, error) {
	return s.customers.GetCustomer(id)
}
