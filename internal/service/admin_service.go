package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"bazaar/internal/auth"
	apperrors "bazaar/internal/errors"
	"bazaar/internal/model"
	"bazaar/internal/repository"
)

// AdminService handles back-office authentication and credential rotation.
type AdminService interface {
	Login(ctx context.Context, username, password string) (accessToken string, admin *model.AdminUser, err error)
	UpdateCredentials(ctx context.Context, oldUsername, oldPassword, newUsername, newPassword string) error
}

type adminService struct {
	adminRepo  repository.AdminRepository
	jwtService *auth.JWTService
}

// NewAdminService creates a new admin service.
func NewAdminService(adminRepo repository.AdminRepository, jwtService *auth.JWTService) AdminService {
	return &adminService{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login authenticates an admin and returns an access token carrying the
// admin role.
func (s *adminService) Login(ctx context.Context, username, password string) (string, *model.AdminUser, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(admin.ID, admin.Username, auth.RoleAdmin)
	if err != nil {
		return "", nil, fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, admin, nil
}

// UpdateCredentials rotates the admin username and password. The old pair
// must verify first.
func (s *adminService) UpdateCredentials(ctx context.Context, oldUsername, oldPassword, newUsername, newPassword string) error {
	admin, err := s.adminRepo.FindByUsername(ctx, oldUsername)
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(oldPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.adminRepo.UpdateCredentials(ctx, admin.ID, newUsername, string(hashedPassword)); err != nil {
		return fmt.Errorf("update admin credentials: %w", err)
	}
	return nil
}
