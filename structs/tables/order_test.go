package tables_test

import (
	"minitienda_server/structs/tables"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(quantity int, unitPrice string) tables.OrderItem {
	return tables.OrderItem{
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString(unitPrice),
	}
}

func TestOrderItemSubtotal(t *testing.T) {
	t.Parallel()

	oi := item(3, "4.50")
	assert.True(t, oi.Subtotal().Equal(decimal.RequireFromString("13.50")))
}

func TestOrderTotalAmount(t *testing.T) {
	t.Parallel()

	t.Run("sums quantity times unit price", func(t *testing.T) {
		t.Parallel()

		o := &tables.Order{Items: []tables.OrderItem{
			item(2, "10.00"),
			item(1, "5.00"),
		}}

		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("25.00")),
			"expected 25.00, got %s", o.TotalAmount())
	})

	t.Run("empty order totals zero", func(t *testing.T) {
		t.Parallel()

		o := &tables.Order{}
		assert.True(t, o.TotalAmount().IsZero())
	})

	t.Run("uses snapshot price, not product price", func(t *testing.T) {
		t.Parallel()

		oi := item(1, "9.99")
		oi.Product = &tables.Product{Price: decimal.RequireFromString("20.00")}
		o := &tables.Order{Items: []tables.OrderItem{oi}}

		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("9.99")))
	})
}

func TestOrderTotalItems(t *testing.T) {
	t.Parallel()

	o := &tables.Order{Items: []tables.OrderItem{
		item(2, "10.00"),
		item(3, "1.00"),
	}}
	assert.Equal(t, 5, o.TotalItems())

	assert.Equal(t, 0, (&tables.Order{}).TotalItems())
}

func TestOrderIsPaid(t *testing.T) {
	t.Parallel()

	assert.False(t, (&tables.Order{Status: tables.OrderStatusPending}).IsPaid())
	assert.True(t, (&tables.Order{Status: tables.OrderStatusPaid}).IsPaid())
	assert.False(t, (&tables.Order{Status: tables.OrderStatusCancelled}).IsPaid())
}

func TestOrderStatus(t *testing.T) {
	t.Parallel()

	t.Run("valid statuses", func(t *testing.T) {
		t.Parallel()

		assert.True(t, tables.OrderStatusPending.Valid())
		assert.True(t, tables.OrderStatusPaid.Valid())
		assert.True(t, tables.OrderStatusCancelled.Valid())
		assert.False(t, tables.OrderStatus("shipped").Valid())
		assert.False(t, tables.OrderStatus("").Valid())
	})

	t.Run("terminal statuses", func(t *testing.T) {
		t.Parallel()

		assert.False(t, tables.OrderStatusPending.Terminal())
		assert.True(t, tables.OrderStatusPaid.Terminal())
		assert.True(t, tables.OrderStatusCancelled.Terminal())
	})

	t.Run("transition table", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name    string
			from    tables.OrderStatus
			to      tables.OrderStatus
			allowed bool
		}{
			{"pending to paid", tables.OrderStatusPending, tables.OrderStatusPaid, true},
			{"pending to cancelled", tables.OrderStatusPending, tables.OrderStatusCancelled, true},
			{"paid to cancelled", tables.OrderStatusPaid, tables.OrderStatusCancelled, false},
			{"cancelled to paid", tables.OrderStatusCancelled, tables.OrderStatusPaid, false},
			{"paid back to pending", tables.OrderStatusPaid, tables.OrderStatusPending, false},
			{"cancelled back to pending", tables.OrderStatusCancelled, tables.OrderStatusPending, false},
			{"pending to pending is not a transition", tables.OrderStatusPending, tables.OrderStatusPending, false},
			{"pending to unknown", tables.OrderStatusPending, tables.OrderStatus("shipped"), false},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.allowed, tc.from.CanBecome(tc.to))
			})
		}
	})
}
