package tables

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPaid || s == OrderStatusCancelled
}

// CanBecome reports whether an order may change from s to target. Only a
// pending order may move, and only into a terminal status. Re-marking an
// order with its current status is handled by callers as a no-op, not a
// transition.
func (s OrderStatus) CanBecome(target OrderStatus) bool {
	return s == OrderStatusPending && target.Terminal()
}

type Order struct {
	tableName  struct{}    `bun:"table:orders,alias:o"`
	ID         uuid.UUID   `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	CustomerID uuid.UUID   `bun:"customer_id,notnull,type:uuid" json:"customer_id" validate:"required,uuid4"`
	Customer   *Customer   `bun:"rel:belongs-to,join:customer_id=id" json:"customer,omitempty"`
	Status     OrderStatus `bun:"status,notnull,default:'pending'" json:"status" validate:"omitempty,oneof=pending paid cancelled"`
	CreatedAt  time.Time   `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt  time.Time   `bun:"updated_at,notnull,default:now()" json:"updated_at"`

	Items []OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
}

func (o *Order) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

// TotalItems sums the quantities of the loaded items.
func (o *Order) TotalItems() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// TotalAmount sums quantity * unit_price over the loaded items.
// Returns zero for an order with no items.
func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	ID        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id" validate:"omitempty,uuid4"`
	OrderID   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id" validate:"omitempty,uuid4"`
	ProductID uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id" validate:"required,uuid4"`
	Product   *Product  `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`
	Quantity  int       `bun:"quantity,notnull,default:1" json:"quantity" validate:"omitempty,min=1"`

	// UnitPrice is the price snapshot captured at time of sale,
	// independent of the product's current price.
	UnitPrice decimal.Decimal `bun:"unit_price,notnull,type:decimal(10,2)" json:"unit_price"`
}

func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
