package domain

import (
	"fmt"
	"strings"
)

// OrderStatus описывает жизненный цикл заказа.
type OrderStatus string

const (
	// OrderStatusCreated - единственный начальный статус: заказ собран, но не оплачен.
	OrderStatusCreated OrderStatus = "created"
	// OrderStatusPaid - оплата получена.
	OrderStatusPaid OrderStatus = "paid"
	// OrderStatusPacked - заказ укомплектован на складе.
	OrderStatusPacked OrderStatus = "packed"
	// OrderStatusShipped - заказ передан в доставку.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered - заказ вручён клиенту, терминальный статус.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled - заказ отменён, терминальный статус.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// AllStatuses возвращает статусы в порядке жизненного цикла.
func AllStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusCreated,
		OrderStatusPaid,
		OrderStatusPacked,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

var statusTitles = map[OrderStatus]string{
	OrderStatusCreated:   "Created",
	OrderStatusPaid:      "Paid",
	OrderStatusPacked:    "Packed",
	OrderStatusShipped:   "Shipped",
	OrderStatusDelivered: "Delivered",
	OrderStatusCancelled: "Cancelled",
}

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	_, ok := statusTitles[s]
	return ok
}

// Title возвращает имя статуса для отчётов и консоли.
func (s OrderStatus) Title() string {
	if title, ok := statusTitles[s]; ok {
		return title
	}
	return "Unknown(" + string(s) + ")"
}

// IsTerminal сообщает, что из статуса нет исходящих переходов ни в одной таблице.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// ParseOrderStatus разбирает статус без учёта регистра ("Shipped", "shipped").
func ParseOrderStatus(raw string) (OrderStatus, error) {
	status := OrderStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return status, nil
}
