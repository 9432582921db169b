package services

import (
	"errors"
	"fmt"

	"github.com/adityapawar327/Kick-It-Up/apperrors"
	"github.com/adityapawar327/Kick-It-Up/models"
	"github.com/adityapawar327/Kick-It-Up/utils"
	"gorm.io/gorm"
)

// UserService manages profiles for already-registered users. Registration and
// login live in the auth handler.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// ProfileInput carries the user-editable profile fields.
type ProfileInput struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	ImageURL string `json:"image_url"`
}

// GetProfile returns the resolved user's own record.
func (s *UserService) GetProfile(username string) (*models.User, error) {
	user, err := getUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile overwrites the resolved user's profile fields.
func (s *UserService) UpdateProfile(username string, in ProfileInput) (*models.User, error) {
	user, err := getUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	user.FullName = in.FullName
	user.Phone = in.Phone
	user.Address = in.Address
	user.ImageURL = in.ImageURL

	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("update profile for %s: %w", username, err)
	}
	return &user, nil
}

// ChangePassword replaces the resolved user's password after verifying the
// current one.
func (s *UserService) ChangePassword(username, currentPassword, newPassword string) error {
	user, err := getUserByUsername(s.db, username)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return apperrors.ErrWrongPassword
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.db.Model(&user).Update("password", hashed).Error; err != nil {
		return fmt.Errorf("change password for %s: %w", username, err)
	}
	return nil
}

// GetUserByID returns a user's public record.
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("load user %d: %w", id, err)
	}
	return &user, nil
}

// SearchUsers finds users whose username or email matches the query,
// excluding the searcher.
func (s *UserService) SearchUsers(username, query string) ([]models.User, error) {
	var users []models.User
	err := s.db.Select("id, username, email, full_name, image_url").
		Where("(username LIKE ? OR email LIKE ?) AND username != ?",
			"%"+query+"%", "%"+query+"%", username).
		Limit(10).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return users, nil
}
