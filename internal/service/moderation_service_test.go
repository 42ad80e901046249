package service

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "bazaar/internal/errors"
	"bazaar/internal/model"
	"bazaar/internal/repository"
	"bazaar/internal/storage"
)

// MockModerationRepository is a mock implementation of ModerationRepository.
type MockModerationRepository struct {
	mock.Mock
}

func (m *MockModerationRepository) Create(ctx context.Context, pending *model.PendingProduct) error {
	args := m.Called(ctx, pending)
	return args.Error(0)
}

func (m *MockModerationRepository) List(ctx context.Context) ([]model.PendingProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PendingProduct), args.Error(1)
}

func (m *MockModerationRepository) FindByID(ctx context.Context, id uint) (*model.PendingProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PendingProduct), args.Error(1)
}

func (m *MockModerationRepository) FindByIDForUpdate(ctx context.Context, id uint) (*model.PendingProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PendingProduct), args.Error(1)
}

func (m *MockModerationRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockModerationRepository) CreateApproved(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// WithTransaction runs the function against the mock itself so the move
// logic inside the transaction is exercised.
func (m *MockModerationRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.ModerationRepository) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}

// MockBlobStore is a mock implementation of BlobStore.
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Save(file *multipart.FileHeader) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

func (m *MockBlobStore) Remove(webPath string) error {
	args := m.Called(webPath)
	return args.Error(0)
}

func vaseSubmission() SubmitInput {
	return SubmitInput{
		SellerName:      "A",
		SellerEmail:     "a@example.com",
		SellerPhone:     "555-0101",
		ProductName:     "Vase",
		ProductCategory: "pottery",
		ProductPrice:    decimal.NewFromInt(10),
		ProductQuantity: 2,
	}
}

func TestModerationService_Submit(t *testing.T) {
	tests := []struct {
		name          string
		image         *multipart.FileHeader
		setupMock     func(*MockModerationRepository, *MockBlobStore)
		expectedError error
	}{
		{
			name:  "successful submission with image",
			image: &multipart.FileHeader{Filename: "vase.jpg"},
			setupMock: func(mRepo *MockModerationRepository, mBlobs *MockBlobStore) {
				mBlobs.On("Save", mock.Anything).Return("/uploads/1.jpg", nil)
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.PendingProduct")).Return(nil)
			},
		},
		{
			name: "successful submission without image",
			setupMock: func(mRepo *MockModerationRepository, mBlobs *MockBlobStore) {
				mRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.PendingProduct")).Return(nil)
			},
		},
		{
			name:  "unsupported image format",
			image: &multipart.FileHeader{Filename: "vase.gif"},
			setupMock: func(mRepo *MockModerationRepository, mBlobs *MockBlobStore) {
				mBlobs.On("Save", mock.Anything).Return("", storage.ErrUnsupportedFormat)
			},
			expectedError: apperrors.ErrUnsupportedImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockModerationRepository)
			mockBlobs := new(MockBlobStore)
			tt.setupMock(mockRepo, mockBlobs)

			svc := NewModerationService(mockRepo, mockBlobs, nil)
			pending, err := svc.Submit(context.Background(), vaseSubmission(), tt.image)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, pending)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, pending)
				assert.Equal(t, "Vase", pending.ProductName)
				assert.Equal(t, "pottery", pending.ProductCategory)
				if tt.image != nil {
					assert.Equal(t, "/uploads/1.jpg", pending.ProductImage)
				} else {
					assert.Empty(t, pending.ProductImage)
				}
			}

			mockRepo.AssertExpectations(t)
			mockBlobs.AssertExpectations(t)
		})
	}
}

func TestModerationService_Submit_StoreFailureRemovesBlob(t *testing.T) {
	mockRepo := new(MockModerationRepository)
	mockBlobs := new(MockBlobStore)

	mockBlobs.On("Save", mock.Anything).Return("/uploads/2.jpg", nil)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	mockBlobs.On("Remove", "/uploads/2.jpg").Return(nil)

	svc := NewModerationService(mockRepo, mockBlobs, nil)
	pending, err := svc.Submit(context.Background(), vaseSubmission(), &multipart.FileHeader{Filename: "vase.jpg"})

	assert.Error(t, err)
	assert.Nil(t, pending)
	mockBlobs.AssertCalled(t, "Remove", "/uploads/2.jpg")
}

func TestModerationService_Approve(t *testing.T) {
	pending := &model.PendingProduct{
		ID:              7,
		SellerName:      "A",
		SellerEmail:     "a@example.com",
		SellerPhone:     "555-0101",
		ProductName:     "Vase",
		ProductCategory: "pottery",
		ProductPrice:    decimal.NewFromInt(10),
		ProductQuantity: 2,
		ProductImage:    "/uploads/7.jpg",
	}

	t.Run("approve moves pending row into catalog", func(t *testing.T) {
		mockRepo := new(MockModerationRepository)
		mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindByIDForUpdate", mock.Anything, uint(7)).Return(pending, nil)
		mockRepo.On("CreateApproved", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
		mockRepo.On("Delete", mock.Anything, uint(7)).Return(nil)

		svc := NewModerationService(mockRepo, new(MockBlobStore), nil)
		product, err := svc.Approve(context.Background(), 7)

		assert.NoError(t, err)
		assert.NotNil(t, product)
		assert.Equal(t, "Vase", product.ProductName)
		assert.Equal(t, "pottery", product.ProductCategory)
		assert.Equal(t, "A", product.SellerName)
		assert.Equal(t, "a@example.com", product.SellerEmail)
		assert.True(t, decimal.NewFromInt(10).Equal(product.ProductPrice))
		assert.Equal(t, 2, product.ProductQuantity)
		assert.Equal(t, "/uploads/7.jpg", product.ProductImage)

		mockRepo.AssertExpectations(t)
	})

	t.Run("approve missing id yields not found and no insert", func(t *testing.T) {
		mockRepo := new(MockModerationRepository)
		mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindByIDForUpdate", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewModerationService(mockRepo, new(MockBlobStore), nil)
		product, err := svc.Approve(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrPendingNotFound)
		assert.Nil(t, product)
		mockRepo.AssertNotCalled(t, "CreateApproved", mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("catalog insert failure aborts before delete", func(t *testing.T) {
		mockRepo := new(MockModerationRepository)
		mockRepo.On("WithTransaction", mock.Anything, mock.Anything).Return(nil)
		mockRepo.On("FindByIDForUpdate", mock.Anything, uint(7)).Return(pending, nil)
		mockRepo.On("CreateApproved", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

		svc := NewModerationService(mockRepo, new(MockBlobStore), nil)
		product, err := svc.Approve(context.Background(), 7)

		assert.Error(t, err)
		assert.Nil(t, product)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestModerationService_Reject(t *testing.T) {
	t.Run("reject deletes row and blob", func(t *testing.T) {
		mockRepo := new(MockModerationRepository)
		mockBlobs := new(MockBlobStore)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(&model.PendingProduct{
			ID:           7,
			ProductImage: "/uploads/7.jpg",
		}, nil)
		mockRepo.On("Delete", mock.Anything, uint(7)).Return(nil)
		mockBlobs.On("Remove", "/uploads/7.jpg").Return(nil)

		svc := NewModerationService(mockRepo, mockBlobs, nil)
		err := svc.Reject(context.Background(), 7)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
		mockBlobs.AssertExpectations(t)
	})

	t.Run("reject of absent id is still success", func(t *testing.T) {
		mockRepo := new(MockModerationRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewModerationService(mockRepo, new(MockBlobStore), nil)
		err := svc.Reject(context.Background(), 99)

		assert.NoError(t, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestModerationService_ListPending(t *testing.T) {
	mockRepo := new(MockModerationRepository)
	mockRepo.On("List", mock.Anything).Return([]model.PendingProduct{
		{ID: 7, ProductName: "Vase"},
	}, nil)

	svc := NewModerationService(mockRepo, new(MockBlobStore), nil)
	pending, err := svc.ListPending(context.Background())

	assert.NoError(t, err)
	assert.Len(t, pending, 1)
	assert.Equal(t, uint(7), pending[0].ID)
}
