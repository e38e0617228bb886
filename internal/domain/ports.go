package domain

// ProductCatalog описывает ключевой поиск товаров.
type ProductCatalog interface {
	// GetProduct возвращает товар или ErrProductNotFound.
	GetProduct(id string) (Product, error)
	// ListProducts возвращает все товары, отсортированные по ID.
	ListProducts() ([]Product, error)
}

// CustomerCatalog описывает ключевой поиск клиентов.
type CustomerCatalog interface {
	// GetCustomer возвращает клиента или ErrCustomerNotFound.
	GetCustomer(id string) (Customer, error)
	// ListCustomers возвращает всех клиентов, отсортированных по ID.
	ListCustomers() ([]Customer, error)
}

// OrderRepository хранит заказы текущего процесса, чтобы к ним можно было обратиться по ID.
type OrderRepository interface {
	// Create регистрирует заказ. Повторный ID даёт ErrOrderAlreadyExists.
	Create(order *Order) error
	// Get возвращает заказ или ErrOrderNotFound.
	Get(id string) (*Order, error)
	// List возвращает заказы в порядке создания.
	List() ([]*Order, error)
}

// ShippingService - логистика, которую дёргают при переходе в Shipped.
type ShippingService interface {
	// Ship передаёт заказ в доставку и возвращает трек-номер.
	Ship(order OrderSnapshot) (string, error)
}
