package main

import (
	"log"
	"net/http"

	_ "bazaar/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"bazaar/internal/auth"
	"bazaar/internal/cache"
	"bazaar/internal/config"
	"bazaar/internal/db"
	"bazaar/internal/handler"
	"bazaar/internal/model"
	"bazaar/internal/repository"
	"bazaar/internal/router"
	"bazaar/internal/service"
	"bazaar/internal/storage"
)

// @title Artisans Bazaar API
// @version 1.0
// @description Marketplace backend with seller product moderation, catalog listing, orders, and JWT authentication.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.AdminUser{},
		&model.PendingProduct{},
		&model.Product{},
		&model.Sale{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	blobs, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("blob store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)
	moderationRepo := repository.NewModerationRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	saleRepo := repository.NewSaleRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	adminService := service.NewAdminService(adminRepo, jwtService)
	moderationService := service.NewModerationService(moderationRepo, blobs, cacheClient)
	catalogService := service.NewCatalogService(productRepo, blobs, cacheClient)
	orderService := service.NewOrderService(saleRepo)
	userService := service.NewUserService(userRepo, blobs)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	moderationHandler := handler.NewModerationHandler(moderationService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)
	profileHandler := handler.NewProfileHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		blobs,
		authHandler,
		adminHandler,
		moderationHandler,
		catalogHandler,
		orderHandler,
		profileHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
