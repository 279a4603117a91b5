package store

import (
	"context"
	"minitienda_server/structs/tables"
)

// SiteName is injected into every storefront page payload.
const SiteName = "mini e-commerce"

// pageContext builds the base payload shared by all storefront pages:
// the site name and the full category list with product counts. Handlers
// add their page-specific keys on top.
func (srm *StoreRoutesManager) pageContext(ctx context.Context) (map[string]any, error) {
	categories, err := srm.catalogService.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []tables.Category{}
	}

	return map[string]any{
		"site_name":  SiteName,
		"categories": categories,
	}, nil
}
