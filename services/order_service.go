package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"minitienda_server/database"
	"minitienda_server/lib"
	"minitienda_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type OrderService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewOrderService(logger *gecho.Logger, db *database.DB) *OrderService {
	return &OrderService{
		logger: logger,
		db:     db,
	}
}

// OrderListOptions contains filtering and pagination options for order queries
type OrderListOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	Status     string `json:"status,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
}

// OrderListResult wraps the order list response with metadata
type OrderListResult struct {
	Orders     []tables.Order      `json:"orders"`
	Pagination database.Pagination `json:"pagination"`
}

// GetOrders lists orders newest first, optionally filtered by status
// and customer.
func (os *OrderService) GetOrders(ctx context.Context, opts *OrderListOptions) (*OrderListResult, error) {
	if opts == nil {
		opts = &OrderListOptions{}
	}
	opts.Page, opts.PageSize = database.NormalizePage(opts.Page, opts.PageSize, 25)

	// Items are loaded so list rows can carry the computed total amount.
	query := database.Query[tables.Order](os.db).
		Relation("Customer").
		Relation("Items").
		OrderBy("created_at", database.DESC)

	if opts.Status != "" {
		status := tables.OrderStatus(opts.Status)
		if !status.Valid() {
			return nil, fmt.Errorf("invalid order status: %s", opts.Status)
		}
		query = query.Where("status", status)
	}

	if opts.CustomerID != "" {
		customerID, err := uuid.Parse(opts.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("invalid customer id: %w", err)
		}
		query = query.Where("customer_id", customerID)
	}

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return &OrderListResult{
		Orders:     result.Data,
		Pagination: result.Pagination,
	}, nil
}

// GetOrderDetails loads an order with its customer and items, each item
// carrying the product it was priced from. Returns (nil, nil) when the
// order does not exist.
func (os *OrderService) GetOrderDetails(ctx context.Context, orderID uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](os.db).
		Where("id", orderID).
		Relation("Customer").
		Relation("Items").
		Relation("Items.Product").
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order: %w", err)
	}
	return order, nil
}

type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid4"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type CreateOrderRequest struct {
	CustomerID string             `json:"customer_id" validate:"required,uuid4"`
	Items      []OrderItemRequest `json:"items" validate:"omitempty,dive"`
}

// CreateOrder creates an order for a customer, atomically with its items.
// Each item snapshots the product's current price into unit_price, so a
// later price change never rewrites an existing order. Only active
// products can be ordered.
func (os *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*tables.Order, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("invalid customer id: %w", err)
	}

	now := time.Now()
	order := &tables.Order{
		ID:         uuid.New(),
		CustomerID: customerID,
		Status:     tables.OrderStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = database.Transaction(os.db, ctx, func(tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return err
		}

		for _, itemReq := range req.Items {
			item, err := os.buildOrderItem(ctx, tx, order.ID, &itemReq)
			if err != nil {
				return err
			}
			if _, err := tx.NewInsert().Model(item).Exec(ctx); err != nil {
				return err
			}
			order.Items = append(order.Items, *item)
		}

		return nil
	})
	if err != nil {
		os.logger.Error("Failed to create order",
			gecho.Field("error", err),
			gecho.Field("customer_id", customerID),
		)
		if lib.IsDomainError(err) {
			return nil, err
		}
		return nil, lib.MapPgWriteError(err)
	}

	os.logger.Info("Order created successfully",
		gecho.Field("id", order.ID),
		gecho.Field("items", len(order.Items)),
	)
	return order, nil
}

// AddOrderItem appends an item to an existing order, snapshotting the
// product's current price.
func (os *OrderService) AddOrderItem(ctx context.Context, orderID uuid.UUID, req *OrderItemRequest) (*tables.OrderItem, error) {
	var item *tables.OrderItem

	err := database.Transaction(os.db, ctx, func(tx bun.Tx) error {
		exists, err := tx.NewSelect().Model((*tables.Order)(nil)).
			Where("o.id = ?", orderID).
			Exists(ctx)
		if err != nil {
			return err
		}
		if !exists {
			return lib.ErrNotFound
		}

		item, err = os.buildOrderItem(ctx, tx, orderID, req)
		if err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(item).Exec(ctx); err != nil {
			return err
		}

		_, err = tx.NewUpdate().Model((*tables.Order)(nil)).
			Set("updated_at = ?", time.Now()).
			Where("o.id = ?", orderID).
			Exec(ctx)
		return err
	})
	if err != nil {
		if lib.IsDomainError(err) {
			return nil, err
		}
		return nil, lib.MapPgWriteError(err)
	}

	return item, nil
}

// RemoveOrderItem deletes a single item from an order.
func (os *OrderService) RemoveOrderItem(ctx context.Context, orderID, itemID uuid.UUID) error {
	affected, err := database.Query[tables.OrderItem](os.db).
		Where("id", itemID).
		Where("order_id", orderID).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// MarkPaid transitions a pending order to paid and advances updated_at.
// Re-marking an already paid order is a no-op; a cancelled order cannot
// become paid.
func (os *OrderService) MarkPaid(ctx context.Context, orderID uuid.UUID) (*tables.Order, error) {
	return os.transition(ctx, orderID, tables.OrderStatusPaid)
}

// MarkCancelled transitions a pending order to cancelled and advances
// updated_at. Re-marking an already cancelled order is a no-op; a paid
// order cannot become cancelled.
func (os *OrderService) MarkCancelled(ctx context.Context, orderID uuid.UUID) (*tables.Order, error) {
	return os.transition(ctx, orderID, tables.OrderStatusCancelled)
}

// transition applies the order status state machine: pending may move to
// either terminal status, terminal statuses only re-accept themselves.
func (os *OrderService) transition(ctx context.Context, orderID uuid.UUID, target tables.OrderStatus) (*tables.Order, error) {
	var order *tables.Order

	err := database.Transaction(os.db, ctx, func(tx bun.Tx) error {
		current := new(tables.Order)
		err := tx.NewSelect().Model(current).
			Where("o.id = ?", orderID).
			For("UPDATE").
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return lib.ErrNotFound
		}
		if err != nil {
			return err
		}

		if current.Status == target {
			// Idempotent re-mark, nothing to write
			order = current
			return nil
		}
		if !current.Status.CanBecome(target) {
			return fmt.Errorf("%w: %s order cannot become %s", lib.ErrInvalidTransition, current.Status, target)
		}

		current.Status = target
		current.UpdatedAt = time.Now()
		_, err = tx.NewUpdate().Model(current).
			Column("status", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return err
		}

		order = current
		return nil
	})
	if err != nil {
		if lib.IsDomainError(err) {
			return nil, err
		}
		return nil, lib.MapPgError(err)
	}

	os.logger.Info("Order status updated",
		gecho.Field("id", orderID),
		gecho.Field("status", target),
	)
	return order, nil
}

// DeleteOrder deletes an order; its items go with it through the
// cascading foreign key.
func (os *OrderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	affected, err := database.Query[tables.Order](os.db).
		Where("id", orderID).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	os.logger.Info("Order deleted", gecho.Field("id", orderID))
	return nil
}

// buildOrderItem validates the product and snapshots its price into a new
// order item. Inactive or missing products are rejected.
func (os *OrderService) buildOrderItem(ctx context.Context, tx bun.Tx, orderID uuid.UUID, req *OrderItemRequest) (*tables.OrderItem, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}

	product := new(tables.Product)
	err = tx.NewSelect().Model(product).
		Where("p.id = ?", productID).
		Where("p.is_active = ?", true).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: product %s is not available for ordering", lib.ErrInvalidReference, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return &tables.OrderItem{
		ID:        uuid.New(),
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: product.Price,
	}, nil
}
