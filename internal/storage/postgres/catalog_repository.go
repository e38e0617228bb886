package postgres

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// CatalogRepository читает товары и клиентов из PostgreSQL. Запись идёт только через миграции.
// NUMERIC сканируется напрямую в decimal.Decimal.
type CatalogRepository struct {
	db *sql.DB
}

var (
	_ domain.ProductCatalog  = (*CatalogRepository)(nil)
	_ domain.CustomerCatalog = (*CatalogRepository)(nil)
)

// NewCatalogRepository создаёт read-only каталог поверх store.
func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{db: store.DB()}
}

// GetProduct возвращает товар или domain.ErrProductNotFound.
func (r *CatalogRepository) GetProduct(id string) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var p domain.Product
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, price, category
		FROM products
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Price, &p.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, errors.Wrapf(err, "select product %s", id)
	}
	return p, nil
}

// ListProducts возвращает товары, отсортированные по ID.
func (r *CatalogRepository) ListProducts() ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, price, category
		FROM products
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "select products")
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category); err != nil {
			return nil, errors.Wrap(err, "scan product")
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate products")
	}
	return result, nil
}

// GetCustomer возвращает клиента или domain.ErrCustomerNotFound.
func (r *CatalogRepository) GetCustomer(id string) (domain.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var c domain.Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, address
		FROM customers
		WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	if err != nil {
		return domain.Customer{}, errors.Wrapf(err, "select customer %s", id)
	}
	return c, nil
}

// ListCustomers возвращает клиентов, отсортированных по ID.
func (r *CatalogRepository) ListCustomers() ([]domain.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, address
		FROM customers
		ORDER BY id
	`)
	if err != nil {
		return nil, errors.Wrap(err, "select customers")
	}
	defer rows.Close()

	var result []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Address); err != nil {
			return nil, errors.Wrap(err, "scan customer")
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate customers")
	}
	return result, nil
}
