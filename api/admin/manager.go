package admin

import (
	"errors"
	"minitienda_server/lib"
	"minitienda_server/services"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// AdminRoutesManager exposes the management console: full CRUD over the
// catalog, customers and orders, plus the order status actions.
type AdminRoutesManager struct {
	logger          *gecho.Logger
	catalogService  *services.CatalogService
	productService  *services.ProductService
	customerService *services.CustomerService
	orderService    *services.OrderService
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	catalogService *services.CatalogService,
	productService *services.ProductService,
	customerService *services.CustomerService,
	orderService *services.OrderService,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:          logger,
		catalogService:  catalogService,
		productService:  productService,
		customerService: customerService,
		orderService:    orderService,
	}
}

func (ar *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/", ar.ListResources)

		r.Get("/categories", ar.ListCategories)
		r.Post("/categories", ar.CreateCategory)
		r.Put("/categories/{id}", ar.UpdateCategory)
		r.Delete("/categories/{id}", ar.DeleteCategory)

		r.Get("/products", ar.ListProducts)
		r.Post("/products", ar.CreateProduct)
		r.Put("/products/{id}", ar.UpdateProduct)
		r.Delete("/products/{id}", ar.DeleteProduct)

		r.Get("/customers", ar.ListCustomers)
		r.Get("/customers/{id}", ar.GetCustomerDetails)
		r.Post("/customers", ar.CreateCustomer)
		r.Put("/customers/{id}", ar.UpdateCustomer)
		r.Delete("/customers/{id}", ar.DeleteCustomer)

		r.Get("/orders", ar.ListOrders)
		r.Get("/orders/{id}", ar.GetOrderDetails)
		r.Post("/orders", ar.CreateOrder)
		r.Post("/orders/{id}/mark-paid", ar.MarkOrderPaid)
		r.Post("/orders/{id}/mark-cancelled", ar.MarkOrderCancelled)
		r.Post("/orders/{id}/items", ar.AddOrderItem)
		r.Delete("/orders/{id}/items/{item_id}", ar.RemoveOrderItem)
		r.Delete("/orders/{id}", ar.DeleteOrder)
	})
}

// respondError maps service errors onto the response taxonomy: missing
// records are 404, conflicts and blocked deletes are 409, invalid
// references are 400, everything else is a 500.
func (ar *AdminRoutesManager) respondError(w http.ResponseWriter, err error, context string) {
	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w,
			gecho.WithMessage("Record not found"),
			gecho.Send(),
		)
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w,
			gecho.WithMessage("A record with those unique values already exists"),
			gecho.Send(),
		)
	case errors.Is(err, lib.ErrProtected):
		gecho.Conflict(w,
			gecho.WithMessage("Record is still referenced and cannot be deleted"),
			gecho.Send(),
		)
	case errors.Is(err, lib.ErrInvalidReference):
		gecho.BadRequest(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
	case errors.Is(err, lib.ErrInvalidTransition):
		gecho.Conflict(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
	default:
		ar.logger.Error("Admin operation failed",
			gecho.Field("context", context),
			gecho.Field("error", err),
		)
		gecho.InternalServerError(w, gecho.Send())
	}
}
