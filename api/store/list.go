package store

import (
	"minitienda_server/handling"
	"minitienda_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ProductListing handles GET / and GET /categoria/{category_slug}. Both
// render the same page: active products, newest page of 12, optionally
// narrowed to one category. An unknown category slug yields an empty
// listing rather than an error.
func (srm *StoreRoutesManager) ProductListing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	page, _ := handling.ParsePagination(r, 0)
	categorySlug := chi.URLParam(r, "category_slug")

	pageData, err := srm.pageContext(ctx)
	if err != nil {
		handling.HandleError(err, "store.listing", srm.logger, w)
		return
	}

	result, err := srm.productService.GetActiveProducts(ctx, categorySlug, page)
	if err != nil {
		handling.HandleError(err, "store.listing", srm.logger, w)
		return
	}

	var currentCategory *tables.Category
	if categorySlug != "" {
		currentCategory, err = srm.catalogService.GetCategoryBySlug(ctx, categorySlug)
		if err != nil {
			handling.HandleError(err, "store.listing", srm.logger, w)
			return
		}
	}

	pageData["products"] = result.Products
	pageData["pagination"] = result.Pagination
	pageData["current_category"] = currentCategory

	gecho.Success(w,
		gecho.WithData(pageData),
		gecho.Send(),
	)
}
