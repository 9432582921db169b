package config

import (
	"github.com/adityapawar327/Kick-It-Up/models"
	"github.com/adityapawar327/Kick-It-Up/utils"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.User{},
		&models.Sneaker{},
		&models.Order{},
		&models.Review{},
		&models.Favorite{},
	)
	if err != nil {
		utils.Error("failed to migrate database schema", map[string]any{"error": err.Error()})
		return err
	}

	utils.Info("database migrations completed", map[string]any{})
	return nil
}

func ResetAndMigrate(db *gorm.DB) error {
	// Drop all tables
	entities := []interface{}{
		&models.User{},
		&models.Sneaker{},
		&models.Order{},
		&models.Review{},
		&models.Favorite{},
	}

	if err := db.Migrator().DropTable(entities...); err != nil {
		utils.Error("failed to drop tables", map[string]any{"error": err.Error()})
		return err
	}

	if err := db.AutoMigrate(entities...); err != nil {
		utils.Error("failed to auto migrate", map[string]any{"error": err.Error()})
		return err
	}

	SeedUsers(db)
	SeedSneakers(db)

	utils.Info("database reset and migration completed", map[string]any{})
	return nil
}
