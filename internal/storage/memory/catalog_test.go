package memory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
	"github.com/vladislavdragonenkov/orderflow/internal/storage/memory"
)

func TestDemoCatalog(t *testing.T) {
	c := memory.DemoCatalog()

	laptop, err := c.GetProduct("P001")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", laptop.Name)
	assert.True(t, laptop.Price.Equal(decimal.NewFromInt(60000)))

	indra, err := c.GetCustomer("C001")
	require.NoError(t, err)
	assert.Equal(t, "Indra", indra.Name)

	products, err := c.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, []string{"P001", "P002", "P003"}, []string{products[0].ID, products[1].ID, products[2].ID})

	customers, err := c.ListCustomers()
	require.NoError(t, err)
	assert.Len(t, customers, 2)
}

func TestCatalog_NotFound(t *testing.T) {
	c := memory.NewCatalog()

	_, err := c.GetProduct("nope")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.True(t, domain.IsNotFound(err))

	_, err = c.GetCustomer("nope")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}

func TestCatalog_AddValidates(t *testing.T) {
	c := memory.NewCatalog()

	assert.ErrorIs(t, c.AddProduct(domain.Product{ID: "", Price: decimal.NewFromInt(1)}), domain.ErrProductIDRequired)
	assert.ErrorIs(t, c.AddProduct(domain.Product{ID: "X", Price: decimal.NewFromInt(-1)}), domain.ErrPriceNegative)
	assert.ErrorIs(t, c.AddCustomer(domain.Customer{}), domain.ErrCustomerRequired)

	require.NoError(t, c.AddProduct(domain.Product{ID: "X", Name: "Cable", Price: decimal.NewFromInt(10)}))
	p, err := c.GetProduct("X")
	require.NoError(t, err)
	assert.Equal(t, "Cable", p.Name)
}

func TestCatalog_AddRejectsDuplicateIDs(t *testing.T) {
	c := memory.DemoCatalog()

	err := c.AddProduct(domain.Product{ID: "P001", Name: "Tablet", Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrProductAlreadyExists)
	laptop, err := c.GetProduct("P001")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", laptop.Name)

	err = c.AddCustomer(domain.Customer{ID: "C001", Name: "Someone"})
	assert.ErrorIs(t, err, domain.ErrCustomerAlreadyExists)
	indra, err := c.GetCustomer("C001")
	require.NoError(t, err)
	assert.Equal(t, "Indra", indra.Name)
}

func TestCatalog_InitRestoresDemoData(t *testing.T) {
	c := memory.DemoCatalog()
	require.NoError(t, c.AddProduct(domain.Product{ID: "P100", Name: "Cable", Price: decimal.NewFromInt(10)}))

	c.Init()

	products, err := c.ListProducts()
	require.NoError(t, err)
	assert.Len(t, products, 4)
	customers, err := c.ListCustomers()
	require.NoError(t, err)
	assert.Len(t, customers, 2)
}
