package service

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "bazaar/internal/errors"
	"bazaar/internal/model"
)

func TestUserService_UploadProfileImage(t *testing.T) {
	t.Run("upload replaces the previous blob", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockBlobs := new(MockBlobStore)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
			ID:           1,
			ProfileImage: "/uploads/old.jpg",
		}, nil)
		mockBlobs.On("Save", mock.Anything).Return("/uploads/new.jpg", nil)
		mockRepo.On("UpdateProfileImage", mock.Anything, uint(1), "/uploads/new.jpg").Return(nil)
		mockBlobs.On("Remove", "/uploads/old.jpg").Return(nil)

		svc := NewUserService(mockRepo, mockBlobs)
		path, err := svc.UploadProfileImage(context.Background(), 1, &multipart.FileHeader{Filename: "me.jpg"})

		assert.NoError(t, err)
		assert.Equal(t, "/uploads/new.jpg", path)
		mockRepo.AssertExpectations(t)
		mockBlobs.AssertExpectations(t)
	})

	t.Run("unknown user yields not found", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(mockRepo, new(MockBlobStore))
		_, err := svc.UploadProfileImage(context.Background(), 99, &multipart.FileHeader{Filename: "me.jpg"})

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("row update failure removes the new blob", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockBlobs := new(MockBlobStore)
		mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1}, nil)
		mockBlobs.On("Save", mock.Anything).Return("/uploads/new.jpg", nil)
		mockRepo.On("UpdateProfileImage", mock.Anything, uint(1), "/uploads/new.jpg").Return(gorm.ErrInvalidDB)
		mockBlobs.On("Remove", "/uploads/new.jpg").Return(nil)

		svc := NewUserService(mockRepo, mockBlobs)
		_, err := svc.UploadProfileImage(context.Background(), 1, &multipart.FileHeader{Filename: "me.jpg"})

		assert.Error(t, err)
		mockBlobs.AssertCalled(t, "Remove", "/uploads/new.jpg")
	})
}

func TestUserService_RemoveProfileImage(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockBlobs := new(MockBlobStore)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
		ID:           1,
		ProfileImage: "/uploads/old.jpg",
	}, nil)
	mockRepo.On("UpdateProfileImage", mock.Anything, uint(1), "").Return(nil)
	mockBlobs.On("Remove", "/uploads/old.jpg").Return(nil)

	svc := NewUserService(mockRepo, mockBlobs)
	err := svc.RemoveProfileImage(context.Background(), 1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
	mockBlobs.AssertExpectations(t)
}
