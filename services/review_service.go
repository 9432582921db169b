package services

import (
	"errors"
	"fmt"

	"github.com/adityapawar327/Kick-It-Up/apperrors"
	"github.com/adityapawar327/Kick-It-Up/models"
	"gorm.io/gorm"
)

// ReviewService manages sneaker reviews. Each user may review a sneaker at
// most once; only the author may delete a review.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// ReviewInput is the payload for a new review.
type ReviewInput struct {
	SneakerID uint   `json:"sneaker_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// CreateReview records the resolved user's review of a sneaker.
func (s *ReviewService) CreateReview(username string, in ReviewInput) (*models.Review, error) {
	user, err := getUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var sneaker models.Sneaker
	if err := s.db.First(&sneaker, in.SneakerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSneakerNotFound
		}
		return nil, fmt.Errorf("load sneaker %d: %w", in.SneakerID, err)
	}

	var existing models.Review
	err = s.db.Where("sneaker_id = ? AND user_id = ?", sneaker.ID, user.ID).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrAlreadyReviewed
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing review: %w", err)
	}

	review := models.Review{
		SneakerID: sneaker.ID,
		UserID:    user.ID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	review.User = user
	review.Sneaker = sneaker
	return &review, nil
}

// GetReviewsBySneaker returns display views of a sneaker's reviews with the
// author resolved.
func (s *ReviewService) GetReviewsBySneaker(sneakerID uint) ([]models.ReviewView, error) {
	var sneaker models.Sneaker
	if err := s.db.First(&sneaker, sneakerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSneakerNotFound
		}
		return nil, fmt.Errorf("load sneaker %d: %w", sneakerID, err)
	}

	var reviews []models.Review
	if err := s.db.Preload("User").
		Where("sneaker_id = ?", sneakerID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("load reviews for sneaker %d: %w", sneakerID, err)
	}

	views := make([]models.ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, models.ReviewView{
			ID:           r.ID,
			Rating:       r.Rating,
			Comment:      r.Comment,
			Username:     r.User.Username,
			UserImageURL: r.User.ImageURL,
			CreatedAt:    r.CreatedAt,
		})
	}
	return views, nil
}

// GetMyReviews returns every review authored by the resolved user.
func (s *ReviewService) GetMyReviews(username string) ([]models.Review, error) {
	user, err := getUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := s.db.Preload("Sneaker").Preload("Sneaker.Seller").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("load reviews for %s: %w", username, err)
	}
	return reviews, nil
}

// DeleteReview removes a review. Only its author may delete it.
func (s *ReviewService) DeleteReview(id uint, username string) error {
	var review models.Review
	if err := s.db.Preload("User").First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrReviewNotFound
		}
		return fmt.Errorf("load review %d: %w", id, err)
	}

	if review.User.Username != username {
		return apperrors.ErrNotOwner
	}

	if err := s.db.Delete(&review).Error; err != nil {
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	return nil
}
