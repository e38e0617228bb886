package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound - общий признак отсутствующей записи; конкретные ошибки ниже оборачивают его.
	ErrNotFound = errors.New("not found")
	// ErrOrderNotFound возвращается, если заказ не найден в реестре.
	ErrOrderNotFound = fmt.Errorf("order %w", ErrNotFound)
	// ErrProductNotFound возвращается каталогом для неизвестного товара.
	ErrProductNotFound = fmt.Errorf("product %w", ErrNotFound)
	// ErrCustomerNotFound возвращается каталогом для неизвестного клиента.
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)

	// ErrInvalidTransition - запрошенная пара статусов отсутствует в таблице переходов.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidQuantity - количество в позиции должно быть больше нуля.
	ErrInvalidQuantity = errors.New("item quantity must be greater than zero")
	// ErrSubscriberFailure - подписчик упал во время рассылки уведомлений.
	ErrSubscriberFailure = errors.New("subscriber failure")

	// Ошибка отсутствующего идентификатора заказа.
	ErrOrderIDRequired = errors.New("order_id is required")
	// Ошибка отсутствующего клиента у заказа.
	ErrCustomerRequired = errors.New("customer is required")
	// Ошибка отсутствующего идентификатора товара.
	ErrProductIDRequired = errors.New("product_id is required")
	// Ошибка отрицательной цены товара.
	ErrPriceNegative = errors.New("product price must be non-negative")
	// ErrOrderAlreadyExists возвращается при повторной регистрации заказа с тем же ID.
	ErrOrderAlreadyExists = errors.New("order already exists")
	// ErrProductAlreadyExists возвращается при повторном добавлении товара с тем же ID.
	ErrProductAlreadyExists = errors.New("product already exists")
	// ErrCustomerAlreadyExists возвращается при повторном добавлении клиента с тем же ID.
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	// ErrUnknownStatus - строка не соответствует ни одному статусу заказа.
	ErrUnknownStatus = errors.New("unknown order status")
)

// TransitionError описывает отклонённую пару статусов.
type TransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

// Is позволяет сравнивать ошибку с ErrInvalidTransition через errors.Is.
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// SubscriberError сообщает, какой подписчик прервал рассылку.
// Переход к этому моменту уже зафиксирован.
type SubscriberError struct {
	Subscriber string
	Position   int
	Err        error
}

func (e *SubscriberError) Error() string {
	return fmt.Sprintf("%s: subscriber %q (#%d): %v", ErrSubscriberFailure, e.Subscriber, e.Position, e.Err)
}

// Is позволяет сравнивать ошибку с ErrSubscriberFailure через errors.Is.
func (e *SubscriberError) Is(target error) bool {
	return target == ErrSubscriberFailure
}

// Unwrap возвращает исходную ошибку подписчика.
func (e *SubscriberError) Unwrap() error {
	return e.Err
}

// IsNotFound проверяет, относится ли ошибка к отсутствующей записи.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidTransition проверяет, была ли ошибка вызвана недопустимым переходом.
func IsInvalidTransition(err error) bool {
	return errors.Is(err, ErrInvalidTransition)
}
