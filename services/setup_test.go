package services

import (
	"testing"

	"github.com/adityapawar327/Kick-It-Up/models"
	"github.com/adityapawar327/Kick-It-Up/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the real schema. The pool is
// capped at one connection so the memory database is shared and concurrent
// transactions serialize the way row locks would.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Sneaker{},
		&models.Order{},
		&models.Review{},
		&models.Favorite{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	password, err := utils.HashPassword("password123")
	require.NoError(t, err)

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: password,
		FullName: "Test " + username,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTestSneaker(t *testing.T, db *gorm.DB, seller models.User, stock int, price float64) models.Sneaker {
	t.Helper()

	sneaker := models.Sneaker{
		SellerID:    seller.ID,
		Name:        "Air Max 90",
		Brand:       "Nike",
		Description: "Classic colorway",
		Price:       price,
		Size:        "US 10",
		Color:       "White/Red",
		Condition:   "new",
		Stock:       stock,
		Status:      models.SneakerStatusAvailable,
		ImageURLs:   []string{"/uploads/sneakers/airmax90.jpg"},
	}
	require.NoError(t, db.Create(&sneaker).Error)
	return sneaker
}
