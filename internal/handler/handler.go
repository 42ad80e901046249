package handler

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	apperrors "bazaar/internal/errors"
)

// httpError converts a domain error into an echo HTTP error with the
// standard {error, code} body.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// subjectFromContext extracts the subject id and role from the JWT claims
// echo-jwt stored on the request.
func subjectFromContext(c echo.Context) (userID uint, role string, ok bool) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0, "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}
	id, idOK := claims["user_id"].(float64)
	r, roleOK := claims["role"].(string)
	if !idOK || !roleOK {
		return 0, "", false
	}
	return uint(id), r, true
}
