package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"bazaar/internal/model"
)

// ModerationRepository defines persistence operations for the moderation
// queue. CreateApproved writes the catalog row an approval produces, so the
// whole move can run against one transaction handle.
type ModerationRepository interface {
	Create(ctx context.Context, pending *model.PendingProduct) error
	List(ctx context.Context) ([]model.PendingProduct, error)
	FindByID(ctx context.Context, id uint) (*model.PendingProduct, error)
	FindByIDForUpdate(ctx context.Context, id uint) (*model.PendingProduct, error)
	Delete(ctx context.Context, id uint) error
	CreateApproved(ctx context.Context, product *model.Product) error
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ModerationRepository) error) error
}

type moderationRepository struct {
	db *gorm.DB
}

// NewModerationRepository builds a GORM-backed repository.
func NewModerationRepository(db *gorm.DB) ModerationRepository {
	return &moderationRepository{db: db}
}

// Create appends a submission to the moderation queue.
func (r *moderationRepository) Create(ctx context.Context, pending *model.PendingProduct) error {
	return r.db.WithContext(ctx).Create(pending).Error
}

// List returns all pending submissions in store order.
func (r *moderationRepository) List(ctx context.Context) ([]model.PendingProduct, error) {
	var pending []model.PendingProduct
	if err := r.db.WithContext(ctx).Find(&pending).Error; err != nil {
		return nil, err
	}
	return pending, nil
}

// FindByID finds a pending submission by ID.
func (r *moderationRepository) FindByID(ctx context.Context, id uint) (*model.PendingProduct, error) {
	var pending model.PendingProduct
	if err := r.db.WithContext(ctx).First(&pending, id).Error; err != nil {
		return nil, err
	}
	return &pending, nil
}

// FindByIDForUpdate finds a pending submission with a row-level lock.
// Two concurrent approvals of the same row serialize here; the loser sees
// ErrRecordNotFound after the winner's delete commits.
func (r *moderationRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.PendingProduct, error) {
	var pending model.PendingProduct
	if err := r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&pending, id).Error; err != nil {
		return nil, err
	}
	return &pending, nil
}

// Delete removes a pending submission. Deleting zero rows is not an error.
func (r *moderationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.PendingProduct{}, id).Error
}

// CreateApproved inserts the catalog row produced by an approval.
func (r *moderationRepository) CreateApproved(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// WithTransaction executes a function within a database transaction.
func (r *moderationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ModerationRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &moderationRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
