package user

import (
	"context"
	"errors"

	"openbook/internal/dbmysql"

	"gorm.io/gorm"
)

type UserImageRepository interface {
	CreateUserImage(ctx context.Context, image *dbmysql.UserImage) error
	// GetLatestByLocation returns the most recent image a user uploaded for
	// the given location (profile or cover), or (nil, nil).
	GetLatestByLocation(ctx context.Context, userID uint64, location string) (*dbmysql.UserImage, error)
}

type userImageRepository struct {
	db *gorm.DB
}

func NewUserImageRepository(db *gorm.DB) UserImageRepository {
	return &userImageRepository{db: db}
}

func (r *userImageRepository) CreateUserImage(ctx context.Context, image *dbmysql.UserImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *userImageRepository) GetLatestByLocation(ctx context.Context, userID uint64, location string) (*dbmysql.UserImage, error) {
	var image dbmysql.UserImage
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND location = ?", userID, location).
		Order("id DESC").
		First(&image).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}
