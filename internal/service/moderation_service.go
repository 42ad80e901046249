package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"bazaar/internal/cache"
	apperrors "bazaar/internal/errors"
	"bazaar/internal/model"
	"bazaar/internal/repository"
	"bazaar/internal/storage"
)

// SubmitInput carries the seller contact and product fields of a submission.
// Fields are passed through as supplied; no range checks beyond presence are
// applied upstream.
type SubmitInput struct {
	SellerName         string
	SellerEmail        string
	SellerPhone        string
	ProductName        string
	ProductCategory    string
	ProductDescription string
	ProductPrice       decimal.Decimal
	ProductQuantity    int
}

// ModerationService manages the lifecycle of seller submissions from arrival
// to a terminal disposition. Approve moves the row into the catalog inside a
// single transaction with a row lock, so a submission can never end up both
// pending and approved, and two racing approvals cannot both produce a
// catalog row.
type ModerationService interface {
	Submit(ctx context.Context, in SubmitInput, image *multipart.FileHeader) (*model.PendingProduct, error)
	ListPending(ctx context.Context) ([]model.PendingProduct, error)
	Approve(ctx context.Context, id uint) (*model.Product, error)
	Reject(ctx context.Context, id uint) error
}

type moderationService struct {
	pendingRepo repository.ModerationRepository
	blobs       BlobStore
	cache       *cache.Client
}

// NewModerationService creates a new moderation service.
func NewModerationService(pendingRepo repository.ModerationRepository, blobs BlobStore, cache *cache.Client) ModerationService {
	return &moderationService{
		pendingRepo: pendingRepo,
		blobs:       blobs,
		cache:       cache,
	}
}

// Submit stores the optional image blob first, then appends the submission to
// the moderation queue. A queue insert failure leaves no orphan blob behind.
func (s *moderationService) Submit(ctx context.Context, in SubmitInput, image *multipart.FileHeader) (*model.PendingProduct, error) {
	var imagePath string
	if image != nil {
		path, err := s.blobs.Save(image)
		if err != nil {
			if errors.Is(err, storage.ErrUnsupportedFormat) {
				return nil, apperrors.ErrUnsupportedImage
			}
			return nil, fmt.Errorf("store image: %w", err)
		}
		imagePath = path
	}

	pending := &model.PendingProduct{
		SellerName:         in.SellerName,
		SellerEmail:        in.SellerEmail,
		SellerPhone:        in.SellerPhone,
		ProductName:        in.ProductName,
		ProductCategory:    in.ProductCategory,
		ProductDescription: in.ProductDescription,
		ProductPrice:       in.ProductPrice,
		ProductQuantity:    in.ProductQuantity,
		ProductImage:       imagePath,
	}

	if err := s.pendingRepo.Create(ctx, pending); err != nil {
		if imagePath != "" {
			if rmErr := s.blobs.Remove(imagePath); rmErr != nil {
				log.Printf("submit: orphan blob %s not removed: %v", imagePath, rmErr)
			}
		}
		return nil, fmt.Errorf("create pending product: %w", err)
	}

	return pending, nil
}

// ListPending returns all queued submissions in store order.
func (s *moderationService) ListPending(ctx context.Context) ([]model.PendingProduct, error) {
	return s.pendingRepo.List(ctx)
}

// Approve moves a pending submission into the catalog: lock the pending row,
// insert the catalog copy (seller phone dropped), delete the pending row,
// commit. Any step failing rolls the whole move back. A missing row yields
// ErrPendingNotFound, which also makes a second Approve of the same id a
// clean no-op failure.
func (s *moderationService) Approve(ctx context.Context, id uint) (*model.Product, error) {
	var approved *model.Product

	err := s.pendingRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.ModerationRepository) error {
		pending, err := txRepo.FindByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrPendingNotFound
			}
			return fmt.Errorf("find pending product: %w", err)
		}

		product := &model.Product{
			SellerName:         pending.SellerName,
			SellerEmail:        pending.SellerEmail,
			ProductName:        pending.ProductName,
			ProductCategory:    pending.ProductCategory,
			ProductDescription: pending.ProductDescription,
			ProductPrice:       pending.ProductPrice,
			ProductQuantity:    pending.ProductQuantity,
			ProductImage:       pending.ProductImage,
		}

		if err := txRepo.CreateApproved(ctx, product); err != nil {
			return fmt.Errorf("insert catalog product: %w", err)
		}
		if err := txRepo.Delete(ctx, pending.ID); err != nil {
			return fmt.Errorf("delete pending product: %w", err)
		}

		approved = product
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.DeletePrefix(ctx, catalogCachePrefix)
	return approved, nil
}

// Reject deletes a pending submission and its image blob. Rejecting an id
// that no longer exists is still a success; zero deleted rows is not
// distinguished from one.
func (s *moderationService) Reject(ctx context.Context, id uint) error {
	pending, err := s.pendingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("find pending product: %w", err)
	}

	if err := s.pendingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete pending product: %w", err)
	}

	if pending.ProductImage != "" {
		if err := s.blobs.Remove(pending.ProductImage); err != nil {
			log.Printf("reject: blob %s not removed: %v", pending.ProductImage, err)
		}
	}
	return nil
}
