package models

import (
	"time"

	"gorm.io/gorm"
)

// Sneaker listing statuses.
const (
	SneakerStatusAvailable = "AVAILABLE"
	SneakerStatusSold      = "SOLD"
)

type Sneaker struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	SellerID    uint     `gorm:"index;not null" json:"seller_id"`
	Name        string   `gorm:"size:255;not null" json:"name"`
	Brand       string   `gorm:"size:100;index" json:"brand"`
	Description string   `gorm:"type:text" json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	Size        string   `gorm:"size:20" json:"size"`
	Color       string   `gorm:"size:50" json:"color"`
	Condition   string   `gorm:"size:20" json:"condition"` // new, used
	Stock       int      `gorm:"not null;default:0" json:"stock"`
	Status      string   `gorm:"default:'AVAILABLE';size:20" json:"status"`
	ImageURLs   []string `gorm:"serializer:json" json:"image_urls"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Seller User `gorm:"foreignKey:SellerID" json:"seller"`
}
