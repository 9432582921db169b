package models

import (
	"time"
)

type Review struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	SneakerID uint `gorm:"not null;uniqueIndex:idx_review_sneaker_user" json:"sneaker_id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_review_sneaker_user" json:"user_id"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `json:"created_at"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"user"`
	Sneaker Sneaker `gorm:"foreignKey:SneakerID" json:"sneaker"`
}

// ReviewView is the display shape for listing a sneaker's reviews, with the
// author resolved to presentable fields.
type ReviewView struct {
	ID           uint      `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Username     string    `json:"username"`
	UserImageURL string    `json:"user_image_url"`
	CreatedAt    time.Time `json:"created_at"`
}
