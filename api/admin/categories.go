package admin

import (
	"minitienda_server/lib"
	"minitienda_server/services"
	"minitienda_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// parseIDParam parses the {id} URL parameter, writing a 400 itself when
// the value is not a UUID.
func parseIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil || id == uuid.Nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid id"),
			gecho.Send(),
		)
		return uuid.Nil, false
	}
	return id, true
}

// ListCategories handles GET /admin/categories. An optional search term
// narrows the list by name or slug.
func (ar *AdminRoutesManager) ListCategories(w http.ResponseWriter, r *http.Request) {
	var categories []tables.Category
	var err error

	if term := r.URL.Query().Get("search"); term != "" {
		categories, err = ar.catalogService.SearchCategories(r.Context(), term)
	} else {
		categories, err = ar.catalogService.GetCategories(r.Context())
	}
	if err != nil {
		ar.respondError(w, err, "admin.categories.list")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"categories": categories,
			"count":      len(categories),
		}),
		gecho.Send(),
	)
}

type categoryCreateRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
	Slug string `json:"slug" validate:"omitempty,max=140"`
}

// CreateCategory handles POST /admin/categories.
func (ar *AdminRoutesManager) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[categoryCreateRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the category information and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	category := &tables.Category{
		Name: body.Name,
		Slug: body.Slug,
	}

	created, err := ar.catalogService.CreateCategory(r.Context(), category)
	if err != nil {
		ar.respondError(w, err, "admin.categories.create")
		return
	}

	gecho.Success(w,
		gecho.WithData(created),
		gecho.WithMessage("Category created successfully"),
		gecho.Send(),
	)
}

// UpdateCategory handles PUT /admin/categories/{id}.
func (ar *AdminRoutesManager) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[services.UpdateCategoryRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the category information and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if err := ar.catalogService.UpdateCategory(r.Context(), id, body); err != nil {
		ar.respondError(w, err, "admin.categories.update")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category updated successfully"),
		gecho.Send(),
	)
}

// DeleteCategory handles DELETE /admin/categories/{id}. A category that
// still has products cannot be deleted.
func (ar *AdminRoutesManager) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := ar.catalogService.DeleteCategory(r.Context(), id); err != nil {
		ar.respondError(w, err, "admin.categories.delete")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category deleted successfully"),
		gecho.Send(),
	)
}
