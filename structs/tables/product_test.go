package tables_test

import (
	"minitienda_server/structs/tables"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPriceWithTax(t *testing.T) {
	t.Parallel()

	t.Run("standard rate on a round price", func(t *testing.T) {
		t.Parallel()

		p := &tables.Product{Price: decimal.RequireFromString("100.00")}
		got := p.PriceWithTax(tables.DefaultTaxRate)

		assert.True(t, got.Equal(decimal.RequireFromString("119.00")),
			"expected 119.00, got %s", got)
	})

	t.Run("zero price stays zero", func(t *testing.T) {
		t.Parallel()

		p := &tables.Product{Price: decimal.Zero}
		assert.True(t, p.PriceWithTax(tables.DefaultTaxRate).IsZero())
	})

	t.Run("custom rate", func(t *testing.T) {
		t.Parallel()

		p := &tables.Product{Price: decimal.RequireFromString("50.00")}
		got := p.PriceWithTax(decimal.RequireFromString("0.10"))

		assert.True(t, got.Equal(decimal.RequireFromString("55.00")),
			"expected 55.00, got %s", got)
	})
}

func TestDefaultTaxRate(t *testing.T) {
	t.Parallel()

	assert.True(t, tables.DefaultTaxRate.Equal(decimal.RequireFromString("0.19")))
}
