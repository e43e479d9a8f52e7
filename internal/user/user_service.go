package user

import (
	"context"

	"openbook/internal/common"
	"openbook/internal/dbmysql"
)

type UserService interface {
	RegisterUser(ctx context.Context, name, email, password string) (*dbmysql.User, string, error)
	LoginUser(ctx context.Context, email, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error)
	SaveUserImage(ctx context.Context, userID uint64, imageID string, width, height int, location string) (*dbmysql.UserImage, error)
	GetProfileImages(ctx context.Context, userID uint64) (profile, cover *dbmysql.UserImage, err error)
}

type userService struct {
	userRepo  UserRepository
	imageRepo UserImageRepository
}

func NewUserService(userRepo UserRepository, imageRepo UserImageRepository) UserService {
	return &userService{userRepo: userRepo, imageRepo: imageRepo}
}

func (s *userService) RegisterUser(ctx context.Context, name, email, password string) (*dbmysql.User, string, error) {
	if err := common.ValidateName(name); err != nil {
		return nil, "", err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.CheckEmailExists(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := common.GenerateToken(user.UserID, user.Name)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, email, password string) (*dbmysql.User, string, error) {
	if email == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := common.GenerateToken(user.UserID, user.Name)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID uint64) (*dbmysql.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) SaveUserImage(ctx context.Context, userID uint64, imageID string, width, height int, location string) (*dbmysql.UserImage, error) {
	image := &dbmysql.UserImage{
		UserID:   userID,
		ImageID:  imageID,
		Width:    width,
		Height:   height,
		Location: location,
	}
	if err := s.imageRepo.CreateUserImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *userService) GetProfileImages(ctx context.Context, userID uint64) (*dbmysql.UserImage, *dbmysql.UserImage, error) {
	profile, err := s.imageRepo.GetLatestByLocation(ctx, userID, "profile")
	if err != nil {
		return nil, nil, err
	}
	cover, err := s.imageRepo.GetLatestByLocation(ctx, userID, "cover")
	if err != nil {
		return nil, nil, err
	}
	return profile, cover, nil
}
