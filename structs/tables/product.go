package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultTaxRate is the tax rate applied when the caller does not supply one.
var DefaultTaxRate = decimal.NewFromFloat(0.19)

type Product struct {
	tableName   struct{}        `bun:"table:products,alias:p"`
	ID          uuid.UUID       `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	Name        string          `bun:"name,notnull" json:"name" validate:"required,min=2,max=200"`
	Slug        string          `bun:"slug,notnull,unique" json:"slug" validate:"omitempty,max=220"`
	CategoryID  uuid.UUID       `bun:"category_id,notnull,type:uuid" json:"category_id" validate:"required,uuid4"`
	Category    *Category       `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
	Description string          `bun:"description" json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `bun:"price,notnull,type:decimal(10,2)" json:"price"`
	IsActive    bool            `bun:"is_active,notnull" json:"is_active"`
	CreatedAt   time.Time       `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt   time.Time       `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// PriceWithTax returns price * (1 + rate). Pass tables.DefaultTaxRate for
// the standard 19% rate.
func (p *Product) PriceWithTax(rate decimal.Decimal) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(1).Add(rate))
}
