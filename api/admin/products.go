package admin

import (
	"minitienda_server/handling"
	"minitienda_server/lib"
	"minitienda_server/services"
	"minitienda_server/structs"
	"minitienda_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// ListProducts handles GET /admin/products with filtering, search,
// sorting and pagination.
func (ar *AdminRoutesManager) ListProducts(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseProductListOptions(r)
	if err != nil {
		ar.logger.Warn("Invalid query parameters", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := ar.productService.GetProducts(r.Context(), opts)
	if err != nil {
		ar.respondError(w, err, "admin.products.list")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"products":   result.Products,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// CreateProduct handles POST /admin/products.
func (ar *AdminRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductCreateRequest](r)
	if err != nil {
		ar.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the product information and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	categoryID, err := uuid.Parse(body.CategoryID)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid category"),
			gecho.Send(),
		)
		return
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	product := &tables.Product{
		Name:        body.Name,
		Slug:        body.Slug,
		CategoryID:  categoryID,
		Description: body.Description,
		Price:       body.Price,
		IsActive:    isActive,
	}

	created, err := ar.productService.CreateProduct(r.Context(), product)
	if err != nil {
		ar.respondError(w, err, "admin.products.create")
		return
	}

	gecho.Success(w,
		gecho.WithData(created),
		gecho.WithMessage("Product created successfully"),
		gecho.Send(),
	)
}

// UpdateProduct handles PUT /admin/products/{id} with partial updates.
func (ar *AdminRoutesManager) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[services.UpdateProductRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the product information and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if err := ar.productService.UpdateProduct(r.Context(), id, body); err != nil {
		ar.respondError(w, err, "admin.products.update")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated successfully"),
		gecho.Send(),
	)
}

// DeleteProduct handles DELETE /admin/products/{id}. A product that
// appears on an order cannot be deleted.
func (ar *AdminRoutesManager) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := ar.productService.DeleteProduct(r.Context(), id); err != nil {
		ar.respondError(w, err, "admin.products.delete")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted successfully"),
		gecho.Send(),
	)
}
