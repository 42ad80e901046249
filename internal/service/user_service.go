package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"gorm.io/gorm"

	apperrors "bazaar/internal/errors"
	"bazaar/internal/model"
	"bazaar/internal/repository"
	"bazaar/internal/storage"
)

// UserService exposes user profile operations.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	UploadProfileImage(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error)
	RemoveProfileImage(ctx context.Context, userID uint) error
}

type userService struct {
	userRepo repository.UserRepository
	blobs    BlobStore
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository, blobs BlobStore) UserService {
	return &userService{userRepo: userRepo, blobs: blobs}
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UploadProfileImage stores the new blob, points the user row at it, then
// drops the previous blob. A row update failure removes the new blob so no
// orphan is left behind.
func (s *userService) UploadProfileImage(ctx context.Context, userID uint, file *multipart.FileHeader) (string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrUserNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	path, err := s.blobs.Save(file)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedFormat) {
			return "", apperrors.ErrUnsupportedImage
		}
		return "", fmt.Errorf("store image: %w", err)
	}

	if err := s.userRepo.UpdateProfileImage(ctx, userID, path); err != nil {
		if rmErr := s.blobs.Remove(path); rmErr != nil {
			log.Printf("upload profile: orphan blob %s not removed: %v", path, rmErr)
		}
		return "", fmt.Errorf("update profile image: %w", err)
	}

	if user.ProfileImage != "" {
		if err := s.blobs.Remove(user.ProfileImage); err != nil {
			log.Printf("upload profile: old blob %s not removed: %v", user.ProfileImage, err)
		}
	}
	return path, nil
}

// RemoveProfileImage clears the profile image column and deletes the blob.
func (s *userService) RemoveProfileImage(ctx context.Context, userID uint) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := s.userRepo.UpdateProfileImage(ctx, userID, ""); err != nil {
		return fmt.Errorf("clear profile image: %w", err)
	}

	if user.ProfileImage != "" {
		if err := s.blobs.Remove(user.ProfileImage); err != nil {
			log.Printf("remove profile: blob %s not removed: %v", user.ProfileImage, err)
		}
	}
	return nil
}
