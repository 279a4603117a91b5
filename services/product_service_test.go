package services

import (
	"context"
	"minitienda_server/structs/tables"
	"testing"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// staticCategories resolves category slugs from a fixed map, standing in
// for CatalogService in listing tests.
type staticCategories map[string]*tables.Category

func (s staticCategories) GetCategoryBySlug(_ context.Context, slug string) (*tables.Category, error) {
	return s[slug], nil
}

func TestGetProductsUnknownCategorySlug(t *testing.T) {
	t.Parallel()

	ps := &ProductService{
		logger:         gecho.NewDefaultLogger(),
		catalogService: staticCategories{},
	}

	active := true
	result, err := ps.GetProducts(context.Background(), &ProductListOptions{
		IsActive:     &active,
		CategorySlug: "no-such-category",
	})

	require.NoError(t, err, "an unknown category slug must not be an error")
	assert.Empty(t, result.Products)
	assert.Equal(t, 0, result.Pagination.Total)
	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, StorePageSize, result.Pagination.PageSize)
}

func TestCountProductsUnknownCategorySlug(t *testing.T) {
	t.Parallel()

	ps := &ProductService{
		logger:         gecho.NewDefaultLogger(),
		catalogService: staticCategories{},
	}

	count, err := ps.CountProducts(context.Background(), &ProductListOptions{
		CategorySlug: "no-such-category",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
