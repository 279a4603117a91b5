package admin

import (
	"errors"
	"fmt"
	"minitienda_server/lib"
	"minitienda_server/structs/tables"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorMapping(t *testing.T) {
	t.Parallel()

	ar := NewAdminRoutesManager(gecho.NewDefaultLogger(), nil, nil, nil, nil)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"missing record", lib.ErrNotFound, http.StatusNotFound},
		{"duplicate unique value", lib.ErrConflict, http.StatusConflict},
		{"blocked delete", lib.ErrProtected, http.StatusConflict},
		{"transition out of terminal status", fmt.Errorf("%w: paid order cannot become cancelled", lib.ErrInvalidTransition), http.StatusConflict},
		{"reference to a missing record", lib.ErrInvalidReference, http.StatusBadRequest},
		{"unavailable product on order write", fmt.Errorf("%w: product 42 is not available for ordering", lib.ErrInvalidReference), http.StatusBadRequest},
		{"unexpected error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ar.respondError(w, tc.err, "test")
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestOrderPayloadCarriesTotals(t *testing.T) {
	t.Parallel()

	order := &tables.Order{
		Status: tables.OrderStatusPaid,
		Items: []tables.OrderItem{
			{Quantity: 2, UnitPrice: decimal.RequireFromString("10.00")},
			{Quantity: 1, UnitPrice: decimal.RequireFromString("5.00")},
		},
	}

	payload := orderPayload(order)

	total, ok := payload["total_amount"].(decimal.Decimal)
	require.True(t, ok)
	assert.True(t, total.Equal(decimal.RequireFromString("25.00")),
		"expected 25.00, got %s", total)
	assert.Equal(t, 3, payload["total_items"])
	assert.Equal(t, true, payload["is_paid"])
	assert.Same(t, order, payload["order"])
}
