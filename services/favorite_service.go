package services

import (
	"errors"
	"fmt"

	"github.com/adityapawar327/Kick-It-Up/apperrors"
	"github.com/adityapawar327/Kick-It-Up/models"
	"gorm.io/gorm"
)

// FavoriteService manages a user's favorited sneakers. A sneaker may appear
// in a user's favorites at most once.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// AddFavorite records a sneaker in the resolved user's favorites.
func (s *FavoriteService) AddFavorite(username string, sneakerID uint) (*models.Favorite, error) {
	user, err := getUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var sneaker models.Sneaker
	if err := s.db.First(&sneaker, sneakerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSneakerNotFound
		}
		return nil, fmt.Errorf("load sneaker %d: %w", sneakerID, err)
	}

	var existing models.Favorite
	err = s.db.Where("user_id = ? AND sneaker_id = ?", user.ID, sneaker.ID).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrAlreadyFavorited
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing favorite: %w", err)
	}

	favorite := models.Favorite{
		UserID:    user.ID,
		SneakerID: sneaker.ID,
	}
	if err := s.db.Create(&favorite).Error; err != nil {
		return nil, fmt.Errorf("create favorite: %w", err)
	}

	favorite.User = user
	favorite.Sneaker = sneaker
	return &favorite, nil
}

// GetMyFavorites returns the resolved user's favorites with the sneaker and
// its seller loaded.
func (s *FavoriteService) GetMyFavorites(username string) ([]models.Favorite, error) {
	user, err := getUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var favorites []models.Favorite
	if err := s.db.Preload("Sneaker").Preload("Sneaker.Seller").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("load favorites for %s: %w", username, err)
	}
	return favorites, nil
}

// RemoveFavorite deletes a favorite belonging to the resolved user, addressed
// by sneaker.
func (s *FavoriteService) RemoveFavorite(username string, sneakerID uint) error {
	user, err := getUserByUsername(s.db, username)
	if err != nil {
		return err
	}

	var favorite models.Favorite
	if err := s.db.Where("user_id = ? AND sneaker_id = ?", user.ID, sneakerID).
		First(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFavoriteNotFound
		}
		return fmt.Errorf("load favorite: %w", err)
	}

	if err := s.db.Delete(&favorite).Error; err != nil {
		return fmt.Errorf("delete favorite %d: %w", favorite.ID, err)
	}
	return nil
}
