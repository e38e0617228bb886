package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/orderflow/internal/domain"
	"github.com/vladislavdragonenkov/orderflow/internal/report"
)

var base = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func shippedOrder(t *testing.T) *domain.Order {
	t.Helper()

	order, err := domain.NewOrder("order-42", domain.Customer{ID: "c-1", Name: "Indra"}, base)
	require.NoError(t, err)
	require.NoError(t, order.AddItem(domain.Product{ID: "p-1", Name: "Laptop", Price: decimal.NewFromInt(60000)}, 1))
	require.NoError(t, order.AddItem(domain.Product{ID: "p-2", Name: "Mouse", Price: decimal.NewFromInt(500)}, 2))

	rules := domain.DefaultTransitions()
	for i, target := range []domain.OrderStatus{domain.OrderStatusPaid, domain.OrderStatusPacked, domain.OrderStatusShipped} {
		_, err := order.Transition(rules, target, base.Add(time.Duration(i+1)*time.Minute))
		require.NoError(t, err)
	}
	return order
}

func TestBuild(t *testing.T) {
	r := report.Build(shippedOrder(t))

	assert.Equal(t, "order-42", r.OrderID)
	assert.Equal(t, "Indra", r.Customer)
	assert.Equal(t, domain.OrderStatusShipped, r.Status)
	assert.True(t, r.Total.Equal(decimal.NewFromInt(61000)), "total = %s", r.Total)

	require.Len(t, r.Lines, 2)
	assert.Equal(t, "Mouse", r.Lines[1].Product)
	assert.True(t, r.Lines[1].LineTotal.Equal(decimal.NewFromInt(1000)))

	require.Len(t, r.History, 3)
	assert.Equal(t, domain.OrderStatusCreated, r.History[0].From)
	assert.Equal(t, domain.OrderStatusShipped, r.History[2].To)
}

func TestGenerate_Text(t *testing.T) {
	text := report.Generate(shippedOrder(t))

	assert.Contains(t, text, "Customer: Indra")
	assert.Contains(t, text, "Status:   Shipped")
	assert.Contains(t, text, "Total:    61000.00")
	assert.Contains(t, text, "2026-03-01 10:01:00  Created -> Paid")
	assert.Contains(t, text, "2026-03-01 10:02:00  Paid -> Packed")
	assert.Contains(t, text, "2026-03-01 10:03:00  Packed -> Shipped")

	paid := strings.Index(text, "Created -> Paid")
	shipped := strings.Index(text, "Packed -> Shipped")
	assert.Less(t, paid, shipped, "history must be chronological")
}

func TestGenerate_EmptyOrder(t *testing.T) {
	order, err := domain.NewOrder("empty", domain.Customer{ID: "c-2", Name: "Budi"}, base)
	require.NoError(t, err)

	text := report.Generate(order)

	assert.Contains(t, text, "(no items)")
	assert.Contains(t, text, "Total:    0.00")
	assert.True(t, strings.HasSuffix(text, "History:\n"), "history section must be empty, got %q", text)
}

func TestGenerate_Idempotent(t *testing.T) {
	order := shippedOrder(t)
	before := order.Snapshot()

	first := report.Generate(order)
	second := report.Generate(order)

	assert.Equal(t, first, second)
	assert.Equal(t, before, order.Snapshot())
}
