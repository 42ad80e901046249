package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "bazaar/internal/errors"
	"bazaar/internal/service"
)

// AdminHandler handles back-office authentication endpoints.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// AdminLoginRequest represents an admin login request.
type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AdminUpdateRequest represents an admin credential rotation request.
// The old pair must verify before the new pair is applied.
type AdminUpdateRequest struct {
	OldUsername string `json:"old_username" validate:"required"`
	OldPassword string `json:"old_password" validate:"required"`
	NewUsername string `json:"new_username" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// Login godoc
// @Summary Login admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Admin credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/login [post]
func (h *AdminHandler) Login(c echo.Context) error {
	var req AdminLoginRequest
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

	accessToken, admin, err := h.adminService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		AccessToken: accessToken,
		User:        admin,
	})
}

// Update godoc
// @Summary Rotate admin credentials
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AdminUpdateRequest true "Old and new credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/update [post]
func (h *AdminHandler) Update(c echo.Context) error {
	var req AdminUpdateRequest
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

	if err := h.adminService.UpdateCredentials(c.Request().Context(), req.OldUsername, req.OldPassword, req.NewUsername, req.NewPassword); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "credentials updated",
	})
}
