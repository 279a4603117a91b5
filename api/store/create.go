package store

import (
	"errors"
	"minitienda_server/lib"
	"minitienda_server/structs"
	"minitienda_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// CreateProduct handles POST /productos, the public create form. On
// success the client is redirected back to the listing with a 303.
func (srm *StoreRoutesManager) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.ProductCreateRequest](r)
	if err != nil {
		srm.logger.Debug("Failed to extract and validate body", gecho.Field("error", err))
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

	if _, err := srm.productService.CreateProduct(r.Context(), product); err != nil {
		if errors.Is(err, lib.ErrConflict) {
			gecho.Conflict(w,
				gecho.WithMessage("A product with that slug already exists"),
				gecho.Send(),
			)
			return
		}
		if errors.Is(err, lib.ErrInvalidReference) {
			gecho.BadRequest(w,
				gecho.WithMessage("That category does not exist"),
				gecho.Send(),
			)
			return
		}
		srm.logger.Error("Failed to create product", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Unable to create product. Please try again"),
			gecho.Send(),
		)
		return
	}

	// Post/redirect/get back to the listing
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
