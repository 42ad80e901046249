package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bazaar/internal/model"
)

// MockSaleRepository is a mock implementation of SaleRepository.
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *model.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) List(ctx context.Context) ([]model.Sale, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListByUser(ctx context.Context, userID uint) ([]model.Sale, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sale), args.Error(1)
}

func TestOrderService_Place(t *testing.T) {
	tests := []struct {
		name       string
		quantity   int
		totalPrice decimal.Decimal
	}{
		{
			name:       "positive order",
			quantity:   2,
			totalPrice: decimal.NewFromInt(20),
		},
		{
			// The ledger trusts the caller; zero totals are recorded as-is.
			name:       "zero total price is accepted",
			quantity:   1,
			totalPrice: decimal.Zero,
		},
		{
			// Quantity bounds are likewise not enforced.
			name:       "negative quantity is accepted",
			quantity:   -1,
			totalPrice: decimal.NewFromInt(10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockSaleRepository)
			mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Sale")).Return(nil)

			svc := NewOrderService(mockRepo)
			sale, err := svc.Place(context.Background(), 3, 5, tt.quantity, tt.totalPrice)

			assert.NoError(t, err)
			assert.NotNil(t, sale)
			assert.Equal(t, uint(3), sale.ProductID)
			assert.Equal(t, uint(5), sale.UserID)
			assert.Equal(t, tt.quantity, sale.Quantity)
			assert.True(t, tt.totalPrice.Equal(sale.TotalPrice))

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_ListByUser(t *testing.T) {
	mockRepo := new(MockSaleRepository)
	mockRepo.On("ListByUser", mock.Anything, uint(5)).Return([]model.Sale{
		{ID: 1, UserID: 5, ProductID: 3, Quantity: 2},
	}, nil)

	svc := NewOrderService(mockRepo)
	sales, err := svc.ListByUser(context.Background(), 5)

	assert.NoError(t, err)
	assert.Len(t, sales, 1)
	assert.Equal(t, uint(5), sales[0].UserID)
}
