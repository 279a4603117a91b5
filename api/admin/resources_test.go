package admin_test

import (
	"minitienda_server/api/admin"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListResources(t *testing.T) {
	t.Parallel()

	ar := admin.NewAdminRoutesManager(nil, nil, nil, nil, nil)

	r := httptest.NewRequest("GET", "/admin", nil)
	w := httptest.NewRecorder()
	ar.ListResources(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	for _, name := range []string{"categories", "products", "customers", "orders"} {
		assert.Contains(t, body, name)
	}
	assert.Contains(t, body, "/admin/products")
	assert.Contains(t, body, "slug_source")

	// Categories are searchable by name and slug, order rows carry the
	// computed total.
	assert.Contains(t, body, `"search_fields":["name","slug"]`)
	assert.Contains(t, body, "total_amount")
}
