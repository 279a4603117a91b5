package admin

import (
	"context"
	"minitienda_server/handling"
	"minitienda_server/lib"
	"minitienda_server/services"
	"minitienda_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListOrders handles GET /admin/orders, newest first, filterable by
// status and customer.
func (ar *AdminRoutesManager) ListOrders(w http.ResponseWriter, r *http.Request) {
	opts, err := handling.ParseOrderListOptions(r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid query parameters"),
			gecho.WithData(err.Error()),
			gecho.Send(),
		)
		return
	}

	result, err := ar.orderService.GetOrders(r.Context(), opts)
	if err != nil {
		ar.respondError(w, err, "admin.orders.list")
		return
	}

	rows := make([]map[string]any, 0, len(result.Orders))
	for i := range result.Orders {
		rows = append(rows, orderPayload(&result.Orders[i]))
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"orders":     rows,
			"pagination": result.Pagination,
		}),
		gecho.Send(),
	)
}

// GetOrderDetails handles GET /admin/orders/{id}: the order with its
// customer, its items and the computed totals.
func (ar *AdminRoutesManager) GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	order, err := ar.orderService.GetOrderDetails(r.Context(), id)
	if err != nil {
		ar.respondError(w, err, "admin.orders.details")
		return
	}
	if order == nil {
		ar.respondError(w, lib.ErrNotFound, "admin.orders.details")
		return
	}

	gecho.Success(w,
		gecho.WithData(orderPayload(order)),
		gecho.Send(),
	)
}

// CreateOrder handles POST /admin/orders.
func (ar *AdminRoutesManager) CreateOrder(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[services.CreateOrderRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the order information and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	order, err := ar.orderService.CreateOrder(r.Context(), body)
	if err != nil {
		ar.respondError(w, err, "admin.orders.create")
		return
	}

	gecho.Success(w,
		gecho.WithData(orderPayload(order)),
		gecho.WithMessage("Order created successfully"),
		gecho.Send(),
	)
}

// MarkOrderPaid handles POST /admin/orders/{id}/mark-paid.
func (ar *AdminRoutesManager) MarkOrderPaid(w http.ResponseWriter, r *http.Request) {
	ar.markOrder(w, r, ar.orderService.MarkPaid, "Order marked as paid")
}

// MarkOrderCancelled handles POST /admin/orders/{id}/mark-cancelled.
func (ar *AdminRoutesManager) MarkOrderCancelled(w http.ResponseWriter, r *http.Request) {
	ar.markOrder(w, r, ar.orderService.MarkCancelled, "Order marked as cancelled")
}

func (ar *AdminRoutesManager) markOrder(
	w http.ResponseWriter,
	r *http.Request,
	mark func(ctx context.Context, id uuid.UUID) (*tables.Order, error),
	message string,
) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	order, err := mark(r.Context(), id)
	if err != nil {
		ar.respondError(w, err, "admin.orders.mark")
		return
	}
	if order == nil {
		ar.respondError(w, lib.ErrNotFound, "admin.orders.mark")
		return
	}

	gecho.Success(w,
		gecho.WithData(orderPayload(order)),
		gecho.WithMessage(message),
		gecho.Send(),
	)
}

// AddOrderItem handles POST /admin/orders/{id}/items.
func (ar *AdminRoutesManager) AddOrderItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	body, err := lib.ExtractAndValidateBody[services.OrderItemRequest](r)
	if err != nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Please check the item information and try again"),
			gecho.WithData(err),
			gecho.Send(),
		)
		return
	}

	item, err := ar.orderService.AddOrderItem(r.Context(), id, body)
	if err != nil {
		ar.respondError(w, err, "admin.orders.addItem")
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"item":     item,
			"subtotal": item.Subtotal(),
		}),
		gecho.WithMessage("Item added to order"),
		gecho.Send(),
	)
}

// RemoveOrderItem handles DELETE /admin/orders/{id}/items/{item_id}.
func (ar *AdminRoutesManager) RemoveOrderItem(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
	if err != nil || itemID == uuid.Nil {
		gecho.BadRequest(w,
			gecho.WithMessage("Invalid item id"),
			gecho.Send(),
		)
		return
	}

	if err := ar.orderService.RemoveOrderItem(r.Context(), id, itemID); err != nil {
		ar.respondError(w, err, "admin.orders.removeItem")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Item removed from order"),
		gecho.Send(),
	)
}

// DeleteOrder handles DELETE /admin/orders/{id}.
func (ar *AdminRoutesManager) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := ar.orderService.DeleteOrder(r.Context(), id); err != nil {
		ar.respondError(w, err, "admin.orders.delete")
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order deleted successfully"),
		gecho.Send(),
	)
}

// orderPayload shapes an order for list and detail responses, embedding
// the computed totals next to the raw record.
func orderPayload(order *tables.Order) map[string]any {
	return map[string]any{
		"order":        order,
		"total_amount": order.TotalAmount(),
		"total_items":  order.TotalItems(),
		"is_paid":      order.IsPaid(),
	}
}
