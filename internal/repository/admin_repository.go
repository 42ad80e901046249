package repository

import (
	"context"

	"gorm.io/gorm"

	"bazaar/internal/model"
)

// AdminRepository defines admin account persistence operations.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.AdminUser) error
	FindByUsername(ctx context.Context, username string) (*model.AdminUser, error)
	UpdateCredentials(ctx context.Context, id uint, username, passwordHash string) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository builds a GORM-backed repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, admin *model.AdminUser) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	var admin model.AdminUser
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// UpdateCredentials rotates the username and password hash for an admin.
func (r *adminRepository) UpdateCredentials(ctx context.Context, id uint, username, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&model.AdminUser{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"username":      username,
			"password_hash": passwordHash,
		}).Error
}
