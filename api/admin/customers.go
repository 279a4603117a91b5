package admin

import (
	"minitienda_server/handling"
	"minitienda_server/lib"
	"minitienda_server/services"
	"minitienda_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// ListCustomers handles GET /admin/customers with search and pagination.
func (ar *AdminRoutesManager) ListCustomers(w http.ResponseWriter, r *http.Request) {
	opts := handling.ParseCustomerListOptions(r)

	result, err := ar.customerService.GetCustomers(r.Context(), opts)
	if err != nil {
		ar.respondError(w, err, "admin.customers.list")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"customers":  result.Customers,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// GetCustomerDetails handles GET /admin/customers/{id}: the customer
// record plus its order history summary.
func (ar *AdminRoutesManager) GetCustomerDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	customer, err := ar.customerService.GetCustomerByID(r.Context(), id)
	if err != nil {
		ar.respondError(w, err, "admin.customers.details")
		return
	}
	if customer == nil {
		ar.respondError(w, lib.ErrNotFound, "admin.customers.details")
		return
	}

	lastOrder, err := ar.customerService.GetLastOrder(r.Context(), id)
	if err != nil {
		ar.respondError(w, err, "admin.customers.details")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"customer":   customer,
			"full_name":  customer.FullName(),
			"last_order": lastOrder,
		}),
		gecho.Send(),
	)
}

type customerCreateRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
}

// CreateCustomer handles POST /admin/customers.
func (ar *AdminRoutesManager) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[customerCreateRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the customer information and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	customer := &tables.Customer{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
	}

	created, err := ar.customerService.CreateCustomer(r.Context(), customer)
	if err != nil {
		ar.respondError(w, err, "admin.customers.create")
		return
	}

	gecho.Success(w,
		gecho.WithData(created),
		gecho.WithMessage("Customer created successfully"),
		gecho.Send(),
	)
}

// UpdateCustomer handles PUT /admin/customers/{id}.
func (ar *AdminRoutesManager) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[services.UpdateCustomerRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the customer information and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	if err := ar.customerService.UpdateCustomer(r.Context(), id, body); err != nil {
		ar.respondError(w, err, "admin.customers.update")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Customer updated successfully"),
		gecho.Send(),
	)
}

// DeleteCustomer handles DELETE /admin/customers/{id}. The customer's
// orders and their items are removed along with the customer.
func (ar *AdminRoutesManager) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := ar.customerService.DeleteCustomer(r.Context(), id); err != nil {
		ar.respondError(w, err, "admin.customers.delete")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Customer deleted successfully"),
		gecho.Send(),
	)
}
