package services

import (
	"errors"
	"fmt"

	"github.com/adityapawar327/Kick-It-Up/apperrors"
	"github.com/adityapawar327/Kick-It-Up/models"
	"gorm.io/gorm"
)

// getUserByUsername resolves an authenticated principal to its user row.
func getUserByUsername(db *gorm.DB, username string) (models.User, error) {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("load user %s: %w", username, err)
	}
	return user, nil
}
