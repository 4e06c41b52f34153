package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore/internal/models/request_models"
	"bookstore/internal/services"
	"bookstore/pkg/middleware"
	"bookstore/pkg/utils"
)

type OrderController struct {
	orderService services.OrderServiceInterface
}

func NewOrderController(orderService services.OrderServiceInterface) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// CreateOrder godoc
// @Summary Place an order for the logged-in user
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Cart items, total and shipping info"
// @Success 201 {object} response_models.OrderResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/orders [post]
func (o *OrderController) CreateOrder(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing order data")
		return
	}

	order, err := o.orderService.CreateOrder(c.Request.Context(), identity, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, order)
}

// GetOwnOrders godoc
// @Summary List the caller's orders, newest first
// @Tags Orders
// @Produce json
// @Success 200 {array} response_models.OrderResponse
// @Security BearerAuth
// @Router /api/orders [get]
func (o *OrderController) GetOwnOrders(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Not logged in")
		return
	}

	orders, err := o.orderService.GetOwnOrders(c.Request.Context(), identity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, orders)
}

func (o *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := o.orderService.GetAllOrders(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, orders)
}

// CancelOrder godoc
// @Summary Delete an order
// @Description Deleting an order that does not exist also succeeds
// @Tags Orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/orders/{id} [delete]
func (o *OrderController) CancelOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := o.orderService.CancelOrder(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, http.StatusOK, "Order deleted")
}
