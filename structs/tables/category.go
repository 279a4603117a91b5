package tables

import (
	"github.com/google/uuid"
)

type Category struct {
	tableName struct{}  `bun:"table:categories,alias:c"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	Name      string    `bun:"name,notnull,unique" json:"name" validate:"required,min=2,max=100"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug" validate:"omitempty,max=120"`

	// ProductCount is filled by a count subquery on list reads, never stored.
	ProductCount int `bun:"product_count,scanonly" json:"product_count"`

	Products []Product `bun:"rel:has-many,join:id=category_id" json:"products,omitempty"`
}
