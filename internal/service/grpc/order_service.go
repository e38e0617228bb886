package grpcsvc

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	orderflowv1 "github.com/vladislavdragonenkov/orderflow/api/orderflow/v1"
	"github.com/vladislavdragonenkov/orderflow/internal/domain"
	"github.com/vladislavdragonenkov/orderflow/internal/service/lifecycle"
)

// OrderService реализует gRPC API поверх lifecycle.Service.
type OrderService struct {
	orderflowv1.UnimplementedOrderServiceServer

	core   *lifecycle.Service
	logger *log.Entry
}

var _ orderflowv1.OrderServiceServer = (*OrderService)(nil)

// NewOrderService конструирует сервис с зависимостями.
func NewOrderService(core *lifecycle.Service, logger *log.Entry) *OrderService {
	if logger == nil {
		logger = log.New().WithField("component", "order-service")
	}
	return &OrderService{core: core, logger: logger}
}

// CreateOrder создаёт заказ для клиента из каталога.
func (s *OrderService) CreateOrder(_ context.Context, req *orderflowv1.CreateOrderRequest) (*orderflowv1.CreateOrderResponse, error) {
	if req == nil || req.CustomerId == "" {
		return nil, status.Error(codes.InvalidArgument, "customer_id is required")
	}

	order, err := s.core.CreateOrderForCustomer(req.OrderId, req.CustomerId)
	if err != nil {
		return nil, s.toStatus(err, "CreateOrder", req.OrderId)
	}
	return &orderflowv1.CreateOrderResponse{Order: toAPIOrder(order.Snapshot())}, nil
}

// AddItem добавляет позицию в заказ.
func (s *OrderService) AddItem(_ context.Context, req *orderflowv1.AddItemRequest) (*orderflowv1.AddItemResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	if req.ProductId == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}

	order, err := s.core.AddItemByID(req.OrderId, req.ProductId, int(req.Quantity))
	if err != nil {
		return nil, s.toStatus(err, "AddItem", req.OrderId)
	}
	return &orderflowv1.AddItemResponse{Order: toAPIOrder(order.Snapshot())}, nil
}

// RequestTransition запрашивает смену статуса.
// Недопустимая пара даёт FailedPrecondition. Ошибка подписчика не превращается
// в gRPC-ошибку: переход уже зафиксирован, она возвращается в SubscriberError.
func (s *OrderService) RequestTransition(_ context.Context, req *orderflowv1.RequestTransitionRequest) (*orderflowv1.RequestTransitionResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}
	target, err := domain.ParseOrderStatus(req.Target)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	order, old, err := s.core.TransitionByID(req.OrderId, target)
	var subErr *domain.SubscriberError
	switch {
	case err == nil:
	case errors.As(err, &subErr):
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id":   req.OrderId,
			"subscriber": subErr.Subscriber,
		}).Warn("transition committed with subscriber failure")
	default:
		return nil, s.toStatus(err, "RequestTransition", req.OrderId)
	}

	resp := &orderflowv1.RequestTransitionResponse{
		Accepted:       true,
		PreviousStatus: string(old),
		Order:          toAPIOrder(order.Snapshot()),
	}
	if subErr != nil {
		resp.SubscriberError = subErr.Error()
	}
	return resp, nil
}

// GetOrder возвращает состояние заказа с историей.
func (s *OrderService) GetOrder(_ context.Context, req *orderflowv1.GetOrderRequest) (*orderflowv1.GetOrderResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	order, err := s.core.Order(req.OrderId)
	if err != nil {
		return nil, s.toStatus(err, "GetOrder", req.OrderId)
	}
	snap := order.Snapshot()
	if errs := snap.ValidateInvariants(); len(errs) > 0 {
		s.logger.WithField("order_id", snap.ID).WithField("violations", errors.Join(errs...).Error()).Error("order invariants violated")
	}
	return &orderflowv1.GetOrderResponse{Order: toAPIOrder(snap)}, nil
}

// ListOrders возвращает все заказы в порядке создания.
func (s *OrderService) ListOrders(_ context.Context, _ *orderflowv1.ListOrdersRequest) (*orderflowv1.ListOrdersResponse, error) {
	orders, err := s.core.Orders()
	if err != nil {
		s.logger.WithError(err).Error("failed to list orders")
		return nil, status.Error(codes.Internal, "failed to list orders")
	}

	result := make([]*orderflowv1.Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, toAPIOrder(order.Snapshot()))
	}
	return &orderflowv1.ListOrdersResponse{Orders: result}, nil
}

// GetReport возвращает текстовый отчёт.
func (s *OrderService) GetReport(_ context.Context, req *orderflowv1.GetReportRequest) (*orderflowv1.GetReportResponse, error) {
	if req == nil || req.OrderId == "" {
		return nil, status.Error(codes.InvalidArgument, "order_id is required")
	}

	text, err := s.core.ReportByID(req.OrderId)
	if err != nil {
		return nil, s.toStatus(err, "GetReport", req.OrderId)
	}
	return &orderflowv1.GetReportResponse{Report: text}, nil
}

// ListTransitions перечисляет таблицу переходов или переходы из From.
func (s *OrderService) ListTransitions(_ context.Context, req *orderflowv1.ListTransitionsRequest) (*orderflowv1.ListTransitionsResponse, error) {
	rules := s.core.Rules()

	var pairs []domain.Transition
	if req == nil || req.From == "" {
		pairs = rules.Pairs()
	} else {
		from, err := domain.ParseOrderStatus(req.From)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		for _, to := range rules.Next(from) {
			pairs = append(pairs, domain.Transition{From: from, To: to})
		}
	}

	result := make([]*orderflowv1.Transition, 0, len(pairs))
	for _, p := range pairs {
		result = append(result, &orderflowv1.Transition{From: string(p.From), To: string(p.To)})
	}
	return &orderflowv1.ListTransitionsResponse{Transitions: result}, nil
}

// toStatus переводит доменную ошибку в gRPC-статус.
func (s *OrderService) toStatus(err error, operation, orderID string) error {
	entry := s.logger.WithError(err).WithFields(log.Fields{
		"operation": operation,
		"order_id":  orderID,
	})

	switch {
	case domain.IsNotFound(err):
		entry.Debug("not found")
		return status.Error(codes.NotFound, err.Error())
	case domain.IsInvalidTransition(err):
		entry.Debug("transition rejected")
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrOrderAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrOrderIDRequired),
		errors.Is(err, domain.ErrCustomerRequired),
		errors.Is(err, domain.ErrProductIDRequired),
		errors.Is(err, domain.ErrUnknownStatus):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		entry.Error("operation failed")
		return status.Errorf(codes.Internal, "%s failed", operation)
	}
}

func toAPIOrder(snap domain.OrderSnapshot) *orderflowv1.Order {
	items := make([]*orderflowv1.OrderItem, 0, len(snap.Items))
	for _, item := range snap.Items {
		items = append(items, &orderflowv1.OrderItem{
			ProductId:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    int32(item.Quantity),
			UnitPrice:   item.Product.Price.StringFixed(2),
			LineTotal:   item.LineTotal().StringFixed(2),
		})
	}

	history := make([]*orderflowv1.StatusChange, 0, len(snap.History))
	for _, change := range snap.History {
		history = append(history, &orderflowv1.StatusChange{
			From: string(change.From),
			To:   string(change.To),
			At:   change.At.UTC().Format(time.RFC3339Nano),
		})
	}

	return &orderflowv1.Order{
		Id:           snap.ID,
		CustomerId:   snap.Customer.ID,
		CustomerName: snap.Customer.Name,
		Status:       string(snap.Status),
		Items:        items,
		Total:        snap.Total().StringFixed(2),
		History:      history,
		CreatedAt:    snap.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
