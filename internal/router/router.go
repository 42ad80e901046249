package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"bazaar/internal/auth"
	"bazaar/internal/config"
	apperrors "bazaar/internal/errors"
	"bazaar/internal/handler"
	"bazaar/internal/storage"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	blobs *storage.Store,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	moderationHandler *handler.ModerationHandler,
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
	profileHandler *handler.ProfileHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(storeTimeout(cfg.StoreTimeout))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded blobs are served statically under the same prefix rows
	// reference them by.
	e.Static(storage.WebPrefix, blobs.Dir())

	jwtMiddleware := echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	})

	// Public routes
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/admin/login", adminHandler.Login)
	e.POST("/submitProduct", moderationHandler.SubmitProduct)
	e.GET("/products/category/:category", catalogHandler.ListByCategory)

	// Back-office routes (admin token required)
	admin := e.Group("/admin", jwtMiddleware, requireRole(auth.RoleAdmin))
	admin.POST("/update", adminHandler.Update)
	admin.GET("/products/pending", moderationHandler.ListPending)
	admin.POST("/approve/:id", moderationHandler.Approve)
	admin.DELETE("/reject/:id", moderationHandler.Reject)
	admin.GET("/products/all", catalogHandler.ListAll)
	admin.DELETE("/remove/:id", catalogHandler.Remove)
	admin.GET("/sales", orderHandler.ListAllSales)

	// Order routes (any authenticated subject)
	orders := e.Group("/orders", jwtMiddleware)
	orders.POST("", orderHandler.Place)
	orders.GET("/:userId", orderHandler.ListByUser)

	// Profile routes (user token required; subject comes from the claims)
	api := e.Group("/api", jwtMiddleware, requireRole(auth.RoleUser))
	api.POST("/upload-profile", profileHandler.UploadProfileImage)
	api.POST("/remove-profile", profileHandler.RemoveProfileImage)
}

// storeTimeout bounds every store and blob call made on behalf of a request.
// Exceeding the deadline surfaces as 504 STORE_TIMEOUT via the error mapping.
func storeTimeout(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// requireRole rejects tokens whose role claim does not match.
func requireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "invalid token",
					Code:  "INVALID_TOKEN",
				})
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "invalid token",
					Code:  "INVALID_TOKEN",
				})
			}
			if got, _ := claims["role"].(string); got != role {
				return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
					Error: "insufficient role",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
