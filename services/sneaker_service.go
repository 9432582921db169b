package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/adityapawar327/Kick-It-Up/apperrors"
	"github.com/adityapawar327/Kick-It-Up/models"
	"gorm.io/gorm"
)

// SneakerService manages listings. Mutations are restricted to the owning
// seller.
type SneakerService struct {
	db *gorm.DB
}

func NewSneakerService(db *gorm.DB) *SneakerService {
	return &SneakerService{db: db}
}

// SneakerInput carries the seller-editable listing fields.
type SneakerInput struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Size        string   `json:"size"`
	Color       string   `json:"color"`
	Condition   string   `json:"condition"`
	Stock       int      `json:"stock"`
	ImageURLs   []string `json:"image_urls"`
}

// CreateSneaker lists a new sneaker for the resolved seller.
func (s *SneakerService) CreateSneaker(username string, in SneakerInput) (*models.Sneaker, error) {
	seller, err := getUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	sneaker := models.Sneaker{
		SellerID:    seller.ID,
		Name:        in.Name,
		Brand:       in.Brand,
		Description: in.Description,
		Price:       in.Price,
		Size:        in.Size,
		Color:       in.Color,
		Condition:   in.Condition,
		Stock:       in.Stock,
		Status:      models.SneakerStatusAvailable,
		ImageURLs:   in.ImageURLs,
	}
	if err := s.db.Create(&sneaker).Error; err != nil {
		return nil, fmt.Errorf("create sneaker: %w", err)
	}

	sneaker.Seller = seller
	return &sneaker, nil
}

// GetAllSneakers returns every listing with its seller loaded.
func (s *SneakerService) GetAllSneakers() ([]models.Sneaker, error) {
	var sneakers []models.Sneaker
	if err := s.withSeller().Order("created_at desc").Find(&sneakers).Error; err != nil {
		return nil, fmt.Errorf("load sneakers: %w", err)
	}
	return sneakers, nil
}

// GetAvailableSneakers returns listings still open for purchase.
func (s *SneakerService) GetAvailableSneakers() ([]models.Sneaker, error) {
	var sneakers []models.Sneaker
	if err := s.withSeller().
		Where("status = ?", models.SneakerStatusAvailable).
		Order("created_at desc").
		Find(&sneakers).Error; err != nil {
		return nil, fmt.Errorf("load available sneakers: %w", err)
	}
	return sneakers, nil
}

// GetSneakerByID returns one listing with its seller loaded.
func (s *SneakerService) GetSneakerByID(id uint) (*models.Sneaker, error) {
	var sneaker models.Sneaker
	if err := s.withSeller().First(&sneaker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSneakerNotFound
		}
		return nil, fmt.Errorf("load sneaker %d: %w", id, err)
	}
	return &sneaker, nil
}

// GetMySneakers returns the resolved seller's own listings.
func (s *SneakerService) GetMySneakers(username string) ([]models.Sneaker, error) {
	seller, err := getUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var sneakers []models.Sneaker
	if err := s.withSeller().
		Where("seller_id = ?", seller.ID).
		Order("created_at desc").
		Find(&sneakers).Error; err != nil {
		return nil, fmt.Errorf("load sneakers for %s: %w", username, err)
	}
	return sneakers, nil
}

// SearchByBrand returns listings whose brand contains the query,
// case-insensitive.
func (s *SneakerService) SearchByBrand(brand string) ([]models.Sneaker, error) {
	return s.searchField("brand", brand)
}

// SearchByName returns listings whose name contains the query,
// case-insensitive.
func (s *SneakerService) SearchByName(name string) ([]models.Sneaker, error) {
	return s.searchField("name", name)
}

// UpdateSneaker overwrites a listing's mutable fields. Only the owning seller
// may update, and the image list is replaced only when one is supplied.
func (s *SneakerService) UpdateSneaker(id uint, username string, in SneakerInput) (*models.Sneaker, error) {
	sneaker, err := s.GetSneakerByID(id)
	if err != nil {
		return nil, err
	}
	if sneaker.Seller.Username != username {
		return nil, apperrors.ErrNotOwner
	}

	sneaker.Name = in.Name
	sneaker.Brand = in.Brand
	sneaker.Description = in.Description
	sneaker.Price = in.Price
	sneaker.Size = in.Size
	sneaker.Color = in.Color
	sneaker.Condition = in.Condition
	sneaker.Stock = in.Stock
	if in.ImageURLs != nil {
		sneaker.ImageURLs = in.ImageURLs
	}

	if err := s.db.Save(sneaker).Error; err != nil {
		return nil, fmt.Errorf("update sneaker %d: %w", id, err)
	}
	return sneaker, nil
}

// DeleteSneaker removes a listing. Only the owning seller may delete.
func (s *SneakerService) DeleteSneaker(id uint, username string) error {
	sneaker, err := s.GetSneakerByID(id)
	if err != nil {
		return err
	}
	if sneaker.Seller.Username != username {
		return apperrors.ErrNotOwner
	}

	if err := s.db.Delete(sneaker).Error; err != nil {
		return fmt.Errorf("delete sneaker %d: %w", id, err)
	}
	return nil
}

func (s *SneakerService) withSeller() *gorm.DB {
	return s.db.Preload("Seller")
}

// searchField does a portable case-insensitive substring match on one column.
func (s *SneakerService) searchField(column, query string) ([]models.Sneaker, error) {
	var sneakers []models.Sneaker
	pattern := "%" + strings.ToLower(query) + "%"
	if err := s.withSeller().
		Where("LOWER("+column+") LIKE ?", pattern).
		Order("created_at desc").
		Find(&sneakers).Error; err != nil {
		return nil, fmt.Errorf("search sneakers by %s: %w", column, err)
	}
	return sneakers, nil
}
