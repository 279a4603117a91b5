package store

import (
	"minitienda_server/handling"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// ProductDetail handles GET /producto/{slug}. Only active products are
// reachable here: an inactive product behaves exactly like a missing one.
func (srm *StoreRoutesManager) ProductDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		gecho.BadRequest(w,
			gecho.WithMessage("Product slug is required"),
			gecho.Send(),
		)
		return
	}

	product, err := srm.productService.GetActiveProductBySlug(ctx, slug)
	if err != nil {
		handling.HandleError(err, "store.detail", srm.logger, w)
		return
	}

	if product == nil {
		gecho.NotFound(w,
			gecho.WithMessage("Product not found"),
			gecho.Send(),
		)
		return
	}

	pageData, err := srm.pageContext(ctx)
	if err != nil {
		handling.HandleError(err, "store.detail", srm.logger, w)
		return
	}

	pageData["product"] = product

	gecho.Success(w,
		gecho.WithData(pageData),
		gecho.Send(),
	)
}
