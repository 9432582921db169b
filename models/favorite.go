package models

import (
	"time"
)

type Favorite struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_favorite_user_sneaker" json:"user_id"`
	SneakerID uint `gorm:"not null;uniqueIndex:idx_favorite_user_sneaker" json:"sneaker_id"`

	CreatedAt time.Time `json:"created_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"user"`
	Sneaker Sneaker `gorm:"foreignKey:SneakerID" json:"sneaker"`
}
