package tables

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	tableName struct{}  `bun:"table:customers,alias:cu"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	FirstName string    `bun:"first_name,notnull" json:"first_name" validate:"required,min=1,max=100"`
	LastName  string    `bun:"last_name,notnull" json:"last_name" validate:"required,min=1,max=150"`
	Email     string    `bun:"email,notnull,unique" json:"email" validate:"required,email"`
	Phone     string    `bun:"phone" json:"phone,omitempty" validate:"omitempty,max=20"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`

	Orders []Order `bun:"rel:has-many,join:id=customer_id" json:"orders,omitempty"`

	// TotalOrders is filled by a count subquery on admin list reads.
	TotalOrders int `bun:"total_orders,scanonly" json:"total_orders"`
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
