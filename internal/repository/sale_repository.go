package repository

import (
	"context"

	"gorm.io/gorm"

	"bazaar/internal/model"
)

// SaleRepository defines order ledger persistence operations. The ledger is
// append-only; there is no update or delete.
type SaleRepository interface {
	Create(ctx context.Context, sale *model.Sale) error
	List(ctx context.Context) ([]model.Sale, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Sale, error)
}

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository builds a GORM-backed repository.
func NewSaleRepository(db *gorm.DB) SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *model.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) List(ctx context.Context) ([]model.Sale, error) {
	var sales []model.Sale
	if err := r.db.WithContext(ctx).Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *saleRepository) ListByUser(ctx context.Context, userID uint) ([]model.Sale, error) {
	var sales []model.Sale
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}
