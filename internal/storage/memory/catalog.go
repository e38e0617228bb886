package memory

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// Catalog - in-memory справочник товаров и клиентов.
type Catalog struct {
	mu        sync.RWMutex
	products  map[string]domain.Product
	customers map[string]domain.Customer
}

var (
	_ domain.ProductCatalog  = (*Catalog)(nil)
	_ domain.CustomerCatalog = (*Catalog)(nil)
)

// NewCatalog создаёт пустой каталог.
func NewCatalog() *Catalog {
	return &Catalog{
		products:  make(map[string]domain.Product),
		customers: make(map[string]domain.Customer),
	}
}

// DemoCatalog возвращает каталог с демонстрационными данными.
func DemoCatalog() *Catalog {
	c := NewCatalog()
	c.Init()
	return c
}

// Init заполняет каталог демонстрационным набором. Существующие записи с теми же ID перезаписываются.
func (c *Catalog) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range []domain.Product{
		{ID: "P001", Name: "Laptop", Price: decimal.NewFromInt(60000), Category: "Electronics"},
		{ID: "P002", Name: "Mouse", Price: decimal.NewFromInt(500), Category: "Accessories"},
		{ID: "P003", Name: "Keyboard", Price: decimal.NewFromInt(1500), Category: "Accessories"},
	} {
		c.products[p.ID] = p
	}
	for _, cu := range []domain.Customer{
		{ID: "C001", Name: "Indra", Address: "indra@example.com"},
		{ID: "C002", Name: "Budi", Address: "budi@example.com"},
	} {
		c.customers[cu.ID] = cu
	}
}

// AddProduct добавляет товар. Повторный ID отклоняется с ErrProductAlreadyExists.
func (c *Catalog) AddProduct(p domain.Product) error {
	if errs := p.Validate(); len(errs) > 0 {
		return errs[0]
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.products[p.ID]; ok {
		return domain.ErrProductAlreadyExists
	}
	c.products[p.ID] = p
	return nil
}

// AddCustomer добавляет клиента. Повторный ID отклоняется с ErrCustomerAlreadyExists.
func (c *Catalog) AddCustomer(cu domain.Customer) error {
	if cu.ID == "" {
		return domain.ErrCustomerRequired
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.customers[cu.ID]; ok {
		return domain.ErrCustomerAlreadyExists
	}
	c.customers[cu.ID] = cu
	return nil
}

// GetProduct возвращает товар или ErrProductNotFound.
func (c *Catalog) GetProduct(id string) (domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return p, nil
}

// GetCustomer возвращает клиента или ErrCustomerNotFound.
func (c *Catalog) GetCustomer(id string) (domain.Customer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cu, ok := c.customers[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return cu, nil
}

// ListProducts возвращает товары, отсортированные по ID.
func (c *Catalog) ListProducts() ([]domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ListCustomers возвращает клиентов, отсортированных по ID.
func (c *Catalog) ListCustomers() ([]domain.Customer, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]domain.Customer, 0, len(c.customers))
	for _, cu := range c.customers {
		result = append(result, cu)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
