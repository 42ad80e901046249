package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bazaar/internal/auth"
	apperrors "bazaar/internal/errors"
	"bazaar/internal/model"
)

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *model.AdminUser) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*model.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AdminUser), args.Error(1)
}

func (m *MockAdminRepository) UpdateCredentials(ctx context.Context, id uint, username, passwordHash string) error {
	args := m.Called(ctx, id, username, passwordHash)
	return args.Error(0)
}

func TestAdminService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("admin-pass"), 10)

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockAdminRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			username: "admin",
			password: "admin-pass",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByUsername", mock.Anything, "admin").Return(&model.AdminUser{
					ID:           1,
					Username:     "admin",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "admin-pass",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "admin",
			password: "nope",
			setupMock: func(m *MockAdminRepository) {
				m.On("FindByUsername", mock.Anything, "admin").Return(&model.AdminUser{
					ID:           1,
					Username:     "admin",
					PasswordHash: string(hashedPassword),
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAdminRepository)
			tt.setupMock(mockRepo)

			svc := NewAdminService(mockRepo, auth.NewJWTService("test-secret"))
			accessToken, admin, err := svc.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, accessToken)
				assert.Nil(t, admin)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotNil(t, admin)
				assert.Equal(t, tt.username, admin.Username)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAdminService_UpdateCredentials(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("old-pass"), 10)
	admin := &model.AdminUser{ID: 1, Username: "admin", PasswordHash: string(hashedPassword)}

	t.Run("rotation requires the old pair", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockRepo.On("FindByUsername", mock.Anything, "admin").Return(admin, nil)

		svc := NewAdminService(mockRepo, auth.NewJWTService("test-secret"))
		err := svc.UpdateCredentials(context.Background(), "admin", "wrong-old", "root", "new-pass")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		mockRepo.AssertNotCalled(t, "UpdateCredentials", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("successful rotation stores a hash of the new password", func(t *testing.T) {
		mockRepo := new(MockAdminRepository)
		mockRepo.On("FindByUsername", mock.Anything, "admin").Return(admin, nil)
		mockRepo.On("UpdateCredentials", mock.Anything, uint(1), "root", mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-pass")) == nil
		})).Return(nil)

		svc := NewAdminService(mockRepo, auth.NewJWTService("test-secret"))
		err := svc.UpdateCredentials(context.Background(), "admin", "old-pass", "root", "new-pass")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
