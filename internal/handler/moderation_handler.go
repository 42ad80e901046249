package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	apperrors "bazaar/internal/errors"
	"bazaar/internal/service"
)

// ModerationHandler handles seller submissions and the moderation queue.
type ModerationHandler struct {
	moderationService service.ModerationService
}

// NewModerationHandler creates a new moderation handler.
func NewModerationHandler(moderationService service.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderationService: moderationService}
}

// SubmitProduct godoc
// @Summary Submit a product for moderation
// @Tags moderation
// @Accept mpfd
// @Produce json
// @Param seller_name formData string true "Seller name"
// @Param seller_email formData string true "Seller email"
// @Param seller_phone formData string false "Seller phone"
// @Param product_name formData string true "Product name"
// @Param product_category formData string true "Product category"
// @Param product_description formData string false "Product description"
// @Param product_price formData string true "Product price"
// @Param product_quantity formData int true "Product quantity"
// @Param image formData file false "Product image"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /submitProduct [post]
func (h *ModerationHandler) SubmitProduct(c echo.Context) error {
	in := service.SubmitInput{
		SellerName:         c.FormValue("seller_name"),
		SellerEmail:        c.FormValue("seller_email"),
		SellerPhone:        c.FormValue("seller_phone"),
		ProductName:        c.FormValue("product_name"),
		ProductCategory:    c.FormValue("product_category"),
		ProductDescription: c.FormValue("product_description"),
	}

	if in.SellerName == "" || in.SellerEmail == "" || in.ProductName == "" || in.ProductCategory == "" {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "missing required fields",
			Code:  "VALIDATION_ERROR",
		})
	}

	price, err := decimal.NewFromString(c.FormValue("product_price"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid product price",
			Code:  "VALIDATION_ERROR",
		})
	}
	in.ProductPrice = price

	quantity, err := strconv.Atoi(c.FormValue("product_quantity"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid product quantity",
			Code:  "VALIDATION_ERROR",
		})
	}
	in.ProductQuantity = quantity

	// Image is optional: a missing file part is not an error.
	var image *multipart.FileHeader
	if file, err := c.FormFile("image"); err == nil {
		image = file
	}

	pending, err := h.moderationService.Submit(c.Request().Context(), in, image)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "product submitted for review",
		"id":      pending.ID,
	})
}

// ListPending godoc
// @Summary List products awaiting moderation
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PendingProduct
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/products/pending [get]
func (h *ModerationHandler) ListPending(c echo.Context) error {
	pending, err := h.moderationService.ListPending(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pending)
}

// Approve godoc
// @Summary Approve a pending product into the catalog
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pending product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/approve/{id} [post]
func (h *ModerationHandler) Approve(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "VALIDATION_ERROR",
		})
	}

	product, err := h.moderationService.Approve(c.Request().Context(), uint(id))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "product approved",
		"product": product,
	})
}

// Reject godoc
// @Summary Reject a pending product
// @Tags moderation
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pending product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/reject/{id} [delete]
func (h *ModerationHandler) Reject(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := h.moderationService.Reject(c.Request().Context(), uint(id)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "product rejected",
	})
}
