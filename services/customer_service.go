package services

import (
	"context"
	"fmt"
	"minitienda_server/database"
	"minitienda_server/lib"
	"minitienda_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type CustomerService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewCustomerService(logger *gecho.Logger, db *database.DB) *CustomerService {
	return &CustomerService{
		logger: logger,
		db:     db,
	}
}

// CustomerListOptions contains filtering and pagination options for customer queries
type CustomerListOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`

	SearchTerm string `json:"search_term,omitempty"` // Search in name and email
}

// CustomerListResult wraps the customer list response with metadata
type CustomerListResult struct {
	Customers  []tables.Customer   `json:"customers"`
	Pagination database.Pagination `json:"pagination"`
}

// GetCustomers lists customers ordered by last name then first name, each
// annotated with its lifetime order count.
func (cs *CustomerService) GetCustomers(ctx context.Context, opts *CustomerListOptions) (*CustomerListResult, error) {
	if opts == nil {
		opts = &CustomerListOptions{}
	}
	opts.Page, opts.PageSize = database.NormalizePage(opts.Page, opts.PageSize, 25)

	query := database.Query[tables.Customer](cs.db).
		ColumnExpr("cu.*").
		ColumnExpr("(SELECT count(*) FROM orders AS o WHERE o.customer_id = cu.id) AS total_orders").
		OrderBy("last_name", database.ASC).
		OrderBy("first_name", database.ASC)

	if opts.SearchTerm != "" {
		searchPattern := "%" + opts.SearchTerm + "%"
		query = query.WhereRaw(
			"(cu.first_name ILIKE ? OR cu.last_name ILIKE ? OR cu.email ILIKE ?)",
			searchPattern, searchPattern, searchPattern,
		)
	}

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}

	return &CustomerListResult{
		Customers:  result.Data,
		Pagination: result.Pagination,
	}, nil
}

// GetCustomerByID returns the customer with the given id, annotated with
// its order count, or (nil, nil) when no customer matches.
func (cs *CustomerService) GetCustomerByID(ctx context.Context, customerID uuid.UUID) (*tables.Customer, error) {
	customer, err := database.Query[tables.Customer](cs.db).
		ColumnExpr("cu.*").
		ColumnExpr("(SELECT count(*) FROM orders AS o WHERE o.customer_id = cu.id) AS total_orders").
		Where("id", customerID).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch customer: %w", err)
	}
	return customer, nil
}

// GetLastOrder returns the customer's most recent order by creation time,
// or (nil, nil) for a customer without orders.
func (cs *CustomerService) GetLastOrder(ctx context.Context, customerID uuid.UUID) (*tables.Order, error) {
	order, err := database.Query[tables.Order](cs.db).
		Where("customer_id", customerID).
		OrderBy("created_at", database.DESC).
		First(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch last order: %w", err)
	}
	return order, nil
}

// GetTotalOrders counts all orders ever placed by the customer,
// regardless of status.
func (cs *CustomerService) GetTotalOrders(ctx context.Context, customerID uuid.UUID) (int, error) {
	count, err := database.Query[tables.Order](cs.db).
		Where("customer_id", customerID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}

// CreateCustomer inserts a new customer. A duplicate email surfaces as
// lib.ErrConflict.
func (cs *CustomerService) CreateCustomer(ctx context.Context, customer *tables.Customer) (*tables.Customer, error) {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	customer.CreatedAt = time.Now()

	created, err := database.Query[tables.Customer](cs.db).Insert(ctx, customer)
	if err != nil {
		cs.logger.Error("Failed to create customer",
			gecho.Field("error", err),
			gecho.Field("email", customer.Email),
		)
		return nil, lib.MapPgWriteError(err)
	}

	cs.logger.Info("Customer created successfully", gecho.Field("id", created.ID))
	return created, nil
}

type UpdateCustomerRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=32"`
}

// UpdateCustomer applies a partial update by id.
func (cs *CustomerService) UpdateCustomer(ctx context.Context, customerID uuid.UUID, req *UpdateCustomerRequest) error {
	updateData := make(map[string]any)

	if req.FirstName != nil {
		updateData["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updateData["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updateData["email"] = *req.Email
	}
	if req.Phone != nil {
		updateData["phone"] = *req.Phone
	}

	if len(updateData) == 0 {
		return nil
	}

	affected, err := database.Query[tables.Customer](cs.db).
		Where("id", customerID).
		Update(ctx, updateData)
	if err != nil {
		return lib.MapPgWriteError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	return nil
}

// DeleteCustomer deletes a customer. The customer's orders and their
// items are removed in the same statement through the cascading foreign
// keys; products referenced by those items are untouched.
func (cs *CustomerService) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	affected, err := database.Query[tables.Customer](cs.db).
		Where("id", customerID).
		Delete(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	cs.logger.Info("Customer deleted", gecho.Field("id", customerID))
	return nil
}
