package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "bazaar/internal/errors"
	"bazaar/internal/service"
)

// OrderHandler handles order placement and listing endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// PlaceOrderRequest represents an order placement request. Quantity and total
// price are recorded as supplied; the ledger applies no bounds.
type PlaceOrderRequest struct {
	ProductID  uint            `json:"product_id" validate:"required"`
	UserID     uint            `json:"user_id" validate:"required"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Place godoc
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PlaceOrderRequest true "Order data"
// @Success 201 {object} model.Sale
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	sale, err := h.orderService.Place(c.Request().Context(), req.ProductID, req.UserID, req.Quantity, req.TotalPrice)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, sale)
}

// ListByUser godoc
// @Summary List orders placed by a user
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Success 200 {array} model.Sale
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders/{userId} [get]
func (h *OrderHandler) ListByUser(c echo.Context) error {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid user id",
			Code:  "VALIDATION_ERROR",
		})
	}

	sales, err := h.orderService.ListByUser(c.Request().Context(), uint(userID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sales)
}

// ListAllSales godoc
// @Summary Dump the whole order ledger
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Sale
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/sales [get]
func (h *OrderHandler) ListAllSales(c echo.Context) error {
	sales, err := h.orderService.ListAllSales(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sales)
}
