package config

import (
	"errors"

	"github.com/adityapawar327/Kick-It-Up/models"
	"github.com/adityapawar327/Kick-It-Up/utils"
	"gorm.io/gorm"
)

func SeedUsers(db *gorm.DB) {
	password, _ := utils.HashPassword("password123")

	users := []models.User{
		{
			Username: "seller1",
			Email:    "seller1@example.com",
			Password: password,
			FullName: "Seller One",
		},
		{
			Username: "buyer1",
			Email:    "buyer1@example.com",
			Password: password,
			FullName: "Buyer One",
		},
	}

	for _, user := range users {
		var existing models.User
		err := db.Where("username = ?", user.Username).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&user).Error; err != nil {
				utils.Error("failed to seed user", map[string]any{"username": user.Username, "error": err.Error()})
			}
		}
	}

	utils.Info("user seeding complete", map[string]any{})
}

func SeedSneakers(db *gorm.DB) {
	var seller models.User
	if err := db.Where("username = ?", "seller1").First(&seller).Error; err != nil {
		utils.Warn("seed seller missing, skipping sneaker seed", map[string]any{})
		return
	}

	sneakers := []models.Sneaker{
		{
			SellerID:    seller.ID,
			Name:        "Air Max 90",
			Brand:       "Nike",
			Description: "Classic colorway, barely worn.",
			Price:       120,
			Size:        "US 10",
			Color:       "White/Red",
			Condition:   "used",
			Stock:       1,
			Status:      models.SneakerStatusAvailable,
			ImageURLs:   []string{"/uploads/sneakers/airmax90.jpg"},
		},
		{
			SellerID:    seller.ID,
			Name:        "Samba OG",
			Brand:       "Adidas",
			Description: "Brand new in box.",
			Price:       100,
			Size:        "US 9",
			Color:       "Black/White",
			Condition:   "new",
			Stock:       3,
			Status:      models.SneakerStatusAvailable,
			ImageURLs:   []string{"/uploads/sneakers/samba.jpg"},
		},
	}

	for _, sneaker := range sneakers {
		var existing models.Sneaker
		err := db.Where("name = ? AND seller_id = ?", sneaker.Name, seller.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&sneaker).Error; err != nil {
				utils.Error("failed to seed sneaker", map[string]any{"name": sneaker.Name, "error": err.Error()})
			}
		}
	}

	utils.Info("sneaker seeding complete", map[string]any{})
}
