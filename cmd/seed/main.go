// Command seed bootstraps the initial back-office admin account. It is safe
// to run repeatedly: an existing username is left untouched.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bazaar/internal/config"
	"bazaar/internal/db"
	"bazaar/internal/model"
	"bazaar/internal/repository"
)

func main() {
	log.Println("Starting admin seed...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.AdminUser{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	username := getEnv("ADMIN_USERNAME", "admin")
	password := getEnv("ADMIN_PASSWORD", "admin123")

	adminRepo := repository.NewAdminRepository(gormDB)
	ctx := context.Background()

	if existing, err := adminRepo.FindByUsername(ctx, username); err == nil && existing != nil {
		log.Printf("Admin %q already exists, nothing to do", username)
		return
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin existence: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &model.AdminUser{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %q created (id=%d)", username, admin.ID)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
