package handling_test

import (
	"minitienda_server/handling"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		page, pageSize := handling.ParsePagination(r, 12)
		assert.Equal(t, 1, page)
		assert.Equal(t, 12, pageSize)
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/?page=3&page_size=50", nil)
		page, pageSize := handling.ParsePagination(r, 12)
		assert.Equal(t, 3, page)
		assert.Equal(t, 50, pageSize)
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/?page=abc&page_size=-5", nil)
		page, pageSize := handling.ParsePagination(r, 12)
		assert.Equal(t, 1, page)
		assert.Equal(t, 12, pageSize)
	})
}

func TestParseProductListOptions(t *testing.T) {
	t.Parallel()

	t.Run("full query string", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/?page=2&page_size=20&is_active=true&category=muebles&search=silla&sort_by=price&sort_direction=desc", nil)
		opts, err := handling.ParseProductListOptions(r)
		require.NoError(t, err)

		assert.Equal(t, 2, opts.Page)
		assert.Equal(t, 20, opts.PageSize)
		require.NotNil(t, opts.IsActive)
		assert.True(t, *opts.IsActive)
		assert.Equal(t, "muebles", opts.CategorySlug)
		assert.Equal(t, "silla", opts.SearchTerm)
		assert.Equal(t, "price", opts.SortBy)
		assert.Equal(t, "DESC", opts.SortDirection)
	})

	t.Run("empty query leaves zero options", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/", nil)
		opts, err := handling.ParseProductListOptions(r)
		require.NoError(t, err)
		assert.Nil(t, opts.IsActive)
		assert.Empty(t, opts.CategorySlug)
	})

	t.Run("bad boolean is an error", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest("GET", "/?is_active=maybe", nil)
		_, err := handling.ParseProductListOptions(r)
		assert.Error(t, err)
	})
}

func TestParseOrderListOptions(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?status=paid&customer_id=6a6f1b9e-0000-4000-8000-000000000000&page=2", nil)
	opts, err := handling.ParseOrderListOptions(r)
	require.NoError(t, err)

	assert.Equal(t, "paid", opts.Status)
	assert.Equal(t, "6a6f1b9e-0000-4000-8000-000000000000", opts.CustomerID)
	assert.Equal(t, 2, opts.Page)
}

func TestParseCustomerListOptions(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/?search=garcia", nil)
	opts := handling.ParseCustomerListOptions(r)
	assert.Equal(t, "garcia", opts.SearchTerm)
	assert.Equal(t, 1, opts.Page)
}
