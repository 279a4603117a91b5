package database_test

import (
	"minitienda_server/database"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	t.Parallel()

	t.Run("defaults for unset values", func(t *testing.T) {
		t.Parallel()

		page, pageSize := database.NormalizePage(0, 0, 12)
		assert.Equal(t, 1, page)
		assert.Equal(t, 12, pageSize)
	})

	t.Run("negative page clamps to one", func(t *testing.T) {
		t.Parallel()

		page, _ := database.NormalizePage(-3, 10, 12)
		assert.Equal(t, 1, page)
	})

	t.Run("page size capped at 100", func(t *testing.T) {
		t.Parallel()

		_, pageSize := database.NormalizePage(1, 5000, 12)
		assert.Equal(t, 100, pageSize)
	})

	t.Run("valid values pass through", func(t *testing.T) {
		t.Parallel()

		page, pageSize := database.NormalizePage(4, 25, 12)
		assert.Equal(t, 4, page)
		assert.Equal(t, 25, pageSize)
	})
}

func TestPaginationTotalPages(t *testing.T) {
	t.Parallel()

	// 13 items at 12 per page: a full first page and one item on page 2
	p := database.Pagination{Page: 2, PageSize: 12, Total: 13}
	assert.Equal(t, 2, p.TotalPages())
	assert.False(t, p.HasNext())

	p = database.Pagination{Page: 1, PageSize: 12, Total: 13}
	assert.True(t, p.HasNext())

	p = database.Pagination{Page: 1, PageSize: 12, Total: 0}
	assert.Equal(t, 0, p.TotalPages())
	assert.False(t, p.HasNext())

	p = database.Pagination{Page: 1, PageSize: 12, Total: 12}
	assert.Equal(t, 1, p.TotalPages())
	assert.False(t, p.HasNext())
}
