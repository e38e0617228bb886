package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
)

// helper для создания пустого заказа.
func makeOrder(t *testing.T) *domain.Order {
	t.Helper()
	customer, err := domain.NewCustomer("c-1", "Indra", "Jl. Merdeka 1")
	require.NoError(t, err)
	order, err := domain.NewOrder("order-1", customer, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	require.NoError(t, err)
	return order
}

func makeProduct(t *testing.T, id string, price int64) domain.Product {
	t.Helper()
	p, err := domain.NewProduct(id, "product "+id, decimal.NewFromInt(price), "misc")
	require.NoError(t, err)
	return p
}

func TestNewOrder_InitialState(t *testing.T) {
	order := makeOrder(t)

	assert.Equal(t, "order-1", order.ID())
	assert.Equal(t, "Indra", order.Customer().Name)
	assert.Equal(t, domain.OrderStatusCreated, order.Status())
	assert.Empty(t, order.Items())
	assert.Empty(t, order.History())
	assert.True(t, order.CalculateTotal().IsZero())
	assert.Empty(t, order.Snapshot().ValidateInvariants())
}

func TestNewOrder_Validation(t *testing.T) {
	customer := domain.Customer{ID: "c-1", Name: "Indra"}

	_, err := domain.NewOrder("  ", customer, time.Now())
	require.ErrorIs(t, err, domain.ErrOrderIDRequired)

	_, err = domain.NewOrder("order-1", domain.Customer{}, time.Now())
	require.ErrorIs(t, err, domain.ErrCustomerRequired)
}

func TestOrder_CalculateTotal(t *testing.T) {
	order := makeOrder(t)
	require.NoError(t, order.AddItem(makeProduct(t, "laptop", 60000), 1))
	require.NoError(t, order.AddItem(makeProduct(t, "mouse", 500), 2))

	assert.True(t, order.CalculateTotal().Equal(decimal.NewFromInt(61000)), "total = %s", order.CalculateTotal())
}

func TestOrder_CalculateTotalReflectsLatestItems(t *testing.T) {
	order := makeOrder(t)
	mouse := makeProduct(t, "mouse", 500)

	require.NoError(t, order.AddItem(mouse, 1))
	assert.Equal(t, "500", order.CalculateTotal().String())

	require.NoError(t, order.AddItem(mouse, 3))
	assert.Equal(t, "2000", order.CalculateTotal().String())
}

func TestOrder_AddItemKeepsDuplicatesSeparate(t *testing.T) {
	order := makeOrder(t)
	mouse := makeProduct(t, "mouse", 500)

	require.NoError(t, order.AddItem(mouse, 1))
	require.NoError(t, order.AddItem(mouse, 2))

	items := order.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestOrder_AddItemInvalidQuantity(t *testing.T) {
	for _, qty := range []int{0, -1} {
		order := makeOrder(t)
		err := order.AddItem(makeProduct(t, "mouse", 500), qty)

		require.ErrorIs(t, err, domain.ErrInvalidQuantity, "qty=%d", qty)
		assert.Empty(t, order.Items(), "qty=%d", qty)
	}
}

func TestOrderItem_LineTotalFractionalPrice(t *testing.T) {
	item := domain.OrderItem{
		Product:  domain.Product{ID: "tea", Price: decimal.RequireFromString("0.10")},
		Quantity: 3,
	}
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("0.3")))
}

func TestOrder_TransitionAppendsHistory(t *testing.T) {
	order := makeOrder(t)
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	change, err := order.Transition(domain.DefaultTransitions(), domain.OrderStatusPaid, at)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusChange{From: domain.OrderStatusCreated, To: domain.OrderStatusPaid, At: at}, change)
	assert.Equal(t, domain.OrderStatusPaid, order.Status())
	assert.Equal(t, []domain.StatusChange{change}, order.History())
	assert.Empty(t, order.Snapshot().ValidateInvariants())
}

func TestOrder_TransitionRejectedLeavesStateUntouched(t *testing.T) {
	order := makeOrder(t)

	_, err := order.Transition(domain.DefaultTransitions(), domain.OrderStatusShipped, time.Now())

	var transitionErr *domain.TransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, domain.OrderStatusCreated, transitionErr.From)
	assert.Equal(t, domain.OrderStatusShipped, transitionErr.To)
	assert.Equal(t, domain.OrderStatusCreated, order.Status())
	assert.Empty(t, order.History())
}

func TestOrder_TransitionWithZeroRules(t *testing.T) {
	order := makeOrder(t)

	_, err := order.Transition(domain.TransitionRules{}, domain.OrderStatusPaid, time.Now())
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestOrder_ItemsReturnsCopy(t *testing.T) {
	order := makeOrder(t)
	require.NoError(t, order.AddItem(makeProduct(t, "mouse", 500), 1))

	items := order.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, order.Items()[0].Quantity)
}

func TestOrderSnapshot_ValidateInvariants(t *testing.T) {
	cases := []struct {
		name string
		snap domain.OrderSnapshot
	}{
		{
			name: "status without history",
			snap: domain.OrderSnapshot{Status: domain.OrderStatusPaid},
		},
		{
			name: "history mismatch",
			snap: domain.OrderSnapshot{
				Status:  domain.OrderStatusPacked,
				History: []domain.StatusChange{{From: domain.OrderStatusCreated, To: domain.OrderStatusPaid}},
			},
		},
		{
			name: "qty invalid",
			snap: domain.OrderSnapshot{
				Status: domain.OrderStatusCreated,
				Items:  []domain.OrderItem{{Product: domain.Product{ID: "p"}, Quantity: 0}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if len(tc.snap.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}
}
