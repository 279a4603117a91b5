package structs

import "github.com/shopspring/decimal"

// ProductCreateRequest is the structured input of the public create form.
// Slug may be left empty, in which case it is derived from the name.
type ProductCreateRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Slug        string          `json:"slug" validate:"omitempty,max=220"`
	CategoryID  string          `json:"category_id" validate:"required,uuid4"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price"`
	IsActive    *bool           `json:"is_active"`
}
