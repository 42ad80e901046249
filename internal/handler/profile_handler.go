package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "bazaar/internal/errors"
	"bazaar/internal/service"
)

// ProfileHandler handles user profile image endpoints. The target user is
// taken from the JWT, not the request body.
type ProfileHandler struct {
	userService service.UserService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(userService service.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

// UploadProfileImage godoc
// @Summary Upload or replace the profile image
// @Tags profile
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Profile image"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/upload-profile [post]
func (h *ProfileHandler) UploadProfileImage(c echo.Context) error {
	userID, _, ok := subjectFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "invalid token",
			Code:  "INVALID_TOKEN",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "missing image file",
			Code:  "VALIDATION_ERROR",
		})
	}

	path, err := h.userService.UploadProfileImage(c.Request().Context(), userID, file)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":       "profile image updated",
		"profile_image": path,
	})
}

// RemoveProfileImage godoc
// @Summary Remove the profile image
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/remove-profile [post]
func (h *ProfileHandler) RemoveProfileImage(c echo.Context) error {
	userID, _, ok := subjectFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "invalid token",
			Code:  "INVALID_TOKEN",
		})
	}

	if err := h.userService.RemoveProfileImage(c.Request().Context(), userID); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "profile image removed",
	})
}
