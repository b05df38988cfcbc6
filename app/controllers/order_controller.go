package controllers

import (
	"errors"
	"net/http"

	"github.com/artcocktail/artcocktail/app/models"
	"github.com/artcocktail/artcocktail/app/services"
	"github.com/artcocktail/artcocktail/pkg/logger"
	"github.com/artcocktail/artcocktail/pkg/middleware"
	"github.com/artcocktail/artcocktail/pkg/response"
)

// OrderController serves /api/orders.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

type statusInput struct {
	Status string `json:"status" validate:"required"`
}

// Place handles POST /api/orders for the authenticated customer.
func (c *OrderController) Place(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.UserFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var in services.PlaceOrderInput
	if !bindJSON(w, r, &in) {
		return
	}

	owner := models.UserSummary{ID: authUser.ID, Name: authUser.Name, Email: authUser.Email}
	order, err := c.service.PlaceOrder(owner, in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder),
			errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrInvalidItem),
			errors.Is(err, services.ErrIncompleteAddress):
			response.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.WithCtx(r.Context()).Error("order placement failed", "error", err)
			response.Internal(w, "Server error placing order")
		}
		return
	}
	response.Created(w, order)
}

// My handles GET /api/orders/my, newest first.
func (c *OrderController) My(w http.ResponseWriter, r *http.Request) {
	authUser, ok := middleware.UserFromCtx(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	owner := models.UserSummary{ID: authUser.ID, Name: authUser.Name, Email: authUser.Email}
	orders, err := c.service.ListMine(owner)
	if err != nil {
		logger.WithCtx(r.Context()).Error("order list failed", "error", err)
		response.Internal(w, "")
		return
	}
	response.Success(w, orders)
}

// All handles GET /api/orders for the admin dashboard.
func (c *OrderController) All(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.ListAll()
	if err != nil {
		logger.WithCtx(r.Context()).Error("order list failed", "error", err)
		response.Internal(w, "")
		return
	}
	response.Success(w, orders)
}

// SetStatus handles PUT /api/orders/{id}/status.
func (c *OrderController) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var in statusInput
	if !bindJSON(w, r, &in) {
		return
	}

	order, err := c.service.SetStatus(id, in.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			response.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrNotFound):
			response.NotFound(w, "Order not found")
		default:
			logger.WithCtx(r.Context()).Error("order status update failed", "error", err)
			response.Internal(w, "Server error updating order")
		}
		return
	}
	response.Success(w, order)
}

// Delete handles DELETE /api/orders/{id}. Items go with the order.
func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := c.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.NotFound(w, "Order not found")
			return
		}
		logger.WithCtx(r.Context()).Error("order delete failed", "error", err)
		response.Internal(w, "Server error deleting order")
		return
	}
	response.Message(w, "Order deleted")
}
