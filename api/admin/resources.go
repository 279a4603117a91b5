package admin

import (
	"net/http"

	"github.com/MonkyMars/gecho"
)

// Resource describes one entity managed through the console: where it
// lives, which columns its listing shows, which fields are searchable or
// filterable, and which field its slug is derived from.
type Resource struct {
	Name         string   `json:"name"`
	Path         string   `json:"path"`
	ListColumns  []string `json:"list_columns"`
	SearchFields []string `json:"search_fields,omitempty"`
	FilterFields []string `json:"filter_fields,omitempty"`
	SlugSource   string   `json:"slug_source,omitempty"`
}

var registeredResources = []Resource{
	{
		Name:         "categories",
		Path:         "/admin/categories",
		ListColumns:  []string{"name", "slug", "product_count"},
		SearchFields: []string{"name", "slug"},
		SlugSource:   "name",
	},
	{
		Name:         "products",
		Path:         "/admin/products",
		ListColumns:  []string{"name", "category", "price", "is_active", "created_at"},
		SearchFields: []string{"name", "slug", "description"},
		FilterFields: []string{"is_active", "category"},
		SlugSource:   "name",
	},
	{
		Name:         "customers",
		Path:         "/admin/customers",
		ListColumns:  []string{"last_name", "first_name", "email", "total_orders"},
		SearchFields: []string{"first_name", "last_name", "email"},
	},
	{
		Name:         "orders",
		Path:         "/admin/orders",
		ListColumns:  []string{"id", "customer", "status", "total_amount", "created_at"},
		FilterFields: []string{"status", "customer_id"},
	},
}

// ListResources handles GET /admin, the console index.
func (ar *AdminRoutesManager) ListResources(w http.ResponseWriter, r *http.Request) {
	gecho.Success(w,
		gecho.WithData(map[string]any{
			"resources": registeredResources,
		}),
		gecho.Send(),
	)
}
