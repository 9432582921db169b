package models

import (
	"time"
)

// Order statuses. Transitions are not restricted; any known status may be set.
const (
	OrderStatusPending   = "PENDING"
	OrderStatusConfirmed = "CONFIRMED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// KnownOrderStatus reports whether s is one of the defined order statuses.
func KnownOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BuyerID   uint `gorm:"index;not null" json:"buyer_id"`
	SellerID  uint `gorm:"index;not null" json:"seller_id"`
	SneakerID uint `gorm:"index;not null" json:"sneaker_id"`

	// TotalAmount is a snapshot of the sneaker price at purchase time so
	// later price edits never change historical order values.
	TotalAmount     float64 `gorm:"not null" json:"total_amount"`
	ShippingAddress string  `gorm:"type:text" json:"shipping_address"`
	PhoneNumber     string  `gorm:"size:20" json:"phone_number"`
	Status          string  `gorm:"default:'PENDING';size:20" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Buyer   User    `gorm:"foreignKey:BuyerID" json:"buyer"`
	Seller  User    `gorm:"foreignKey:SellerID" json:"seller"`
	Sneaker Sneaker `gorm:"foreignKey:SneakerID" json:"sneaker"`
}
