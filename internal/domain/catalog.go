package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Product - позиция каталога. После создания не меняется.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Category string
}

// Customer - клиент, оформляющий заказ. После создания не меняется.
type Customer struct {
	ID      string
	Name    string
	Address string
}

// NewProduct проверяет поля и возвращает товар.
func NewProduct(id, name string, price decimal.Decimal, category string) (Product, error) {
	p := Product{ID: strings.TrimSpace(id), Name: name, Price: price, Category: category}
	if errs := p.Validate(); len(errs) > 0 {
		return Product{}, errs[0]
	}
	return p, nil
}

// Validate проверяет корректность полей товара и возвращает список замечаний.
func (p Product) Validate() []error {
	var errs []error
	if p.ID == "" {
		errs = append(errs, ErrProductIDRequired)
	}
	if p.Price.IsNegative() {
		errs = append(errs, ErrPriceNegative)
	}
	return errs
}

// NewCustomer проверяет поля и возвращает клиента.
func NewCustomer(id, name, address string) (Customer, error) {
	c := Customer{ID: strings.TrimSpace(id), Name: name, Address: address}
	if c.ID == "" {
		return Customer{}, ErrCustomerRequired
	}
	return c, nil
}
