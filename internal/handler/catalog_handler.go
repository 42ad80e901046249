package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "bazaar/internal/errors"
	"bazaar/internal/service"
)

// CatalogHandler handles approved product listing endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListByCategory godoc
// @Summary List approved products in a category
// @Tags catalog
// @Produce json
// @Param category path string true "Product category"
// @Success 200 {array} model.Product
// @Failure 500 {object} errors.ErrorResponse
// @Router /products/category/{category} [get]
func (h *CatalogHandler) ListByCategory(c echo.Context) error {
	products, err := h.catalogService.ListByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// ListAll godoc
// @Summary List the whole catalog
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/products/all [get]
func (h *CatalogHandler) ListAll(c echo.Context) error {
	products, err := h.catalogService.ListAll(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// Remove godoc
// @Summary Remove a product from the catalog
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/remove/{id} [delete]
func (h *CatalogHandler) Remove(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid id",
			Code:  "VALIDATION_ERROR",
		})
	}

	if err := h.catalogService.Remove(c.Request().Context(), uint(id)); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "product removed",
	})
}
