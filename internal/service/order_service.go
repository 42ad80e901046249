package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"bazaar/internal/model"
	"bazaar/internal/repository"
)

// OrderService records and lists sales. The ledger is append-only and trusts
// the caller's quantity and total price: stock is not decremented and the
// total is not recomputed against the catalog price.
type OrderService interface {
	Place(ctx context.Context, productID, userID uint, quantity int, totalPrice decimal.Decimal) (*model.Sale, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Sale, error)
	ListAllSales(ctx context.Context) ([]model.Sale, error)
}

type orderService struct {
	saleRepo repository.SaleRepository
}

// NewOrderService creates a new order service.
func NewOrderService(saleRepo repository.SaleRepository) OrderService {
	return &orderService{saleRepo: saleRepo}
}

// Place appends one sale record.
func (s *orderService) Place(ctx context.Context, productID, userID uint, quantity int, totalPrice decimal.Decimal) (*model.Sale, error) {
	sale := &model.Sale{
		ProductID:  productID,
		UserID:     userID,
		Quantity:   quantity,
		TotalPrice: totalPrice,
	}
	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("create sale: %w", err)
	}
	return sale, nil
}

// ListByUser returns the sales placed by one user.
func (s *orderService) ListByUser(ctx context.Context, userID uint) ([]model.Sale, error) {
	return s.saleRepo.ListByUser(ctx, userID)
}

// ListAllSales returns the whole ledger.
func (s *orderService) ListAllSales(ctx context.Context) ([]model.Sale, error) {
	return s.saleRepo.List(ctx)
}
