package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/emplacadora/emplacadora-api/internal/api/metrics"
	"github.com/emplacadora/emplacadora-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for plate-registration orders.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create opens a new order.
//
// @Summary      Create a plate-registration order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  createOrderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	result, err := h.service.CreateOrder(c.Request().Context(), toCreateOrderInput(req, userID, role))
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.WithLabelValues(req.ServiceType).Inc()
	return c.JSON(http.StatusCreated, createOrderResponse{
		Number:    result.Number,
		Status:    result.Status,
		CreatedAt: result.CreatedAt,
	})
}

// Get retrieves a single order by number. Client roles only see their own.
//
// @Summary      Get an order by number
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        number  path      string  true  "Order number (e.g. EMP-7A8B9C2D)"
// @Success      200     {object}  orderResponse
// @Failure      401     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /v1/orders/{number} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	order, err := h.service.GetOrder(c.Request().Context(), ports.GetOrderInput{
		Number: c.Param("number"),
		Role:   role,
		UserID: userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// List returns a page of orders. Client roles are scoped to their own.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        status        query     string  false  "Filter by status"
// @Param        service_type  query     string  false  "Filter by service type"
// @Param        search        query     string  false  "Partial match on number or plate"
// @Param        page          query     int     false  "1-based page"
// @Param        limit         query     int     false  "Page size (max 100)"
// @Success      200           {object}  listOrdersResponse
// @Failure      401           {object}  errorResponse
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListOrders(c.Request().Context(), ports.ListOrdersInput{
		Role:        role,
		UserID:      userID,
		Status:      c.QueryParam("status"),
		ServiceType: c.QueryParam("service_type"),
		Search:      c.QueryParam("search"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListOrdersResponse(result))
}

// UpdateStatus applies a status transition (admins and sellers only).
//
// @Summary      Update an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        number  path      string                    true  "Order number"
// @Param        body    body      updateOrderStatusRequest  true  "New status"
// @Success      200     {object}  orderResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Router       /v1/orders/{number}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	_, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		Number: c.Param("number"),
		Role:   role,
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderResponse(order))
}
