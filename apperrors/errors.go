package apperrors

import "errors"

// Lookup errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrSneakerNotFound  = errors.New("sneaker not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// Business rule errors
var (
	ErrSneakerNotAvailable = errors.New("sneaker is not available")
	ErrOutOfStock          = errors.New("sneaker is out of stock")
	ErrAlreadyReviewed     = errors.New("you have already reviewed this sneaker")
	ErrAlreadyFavorited    = errors.New("sneaker is already in favorites")
	ErrNotOwner            = errors.New("not authorized")
	ErrInvalidID           = errors.New("invalid id")
	ErrWrongPassword       = errors.New("current password is incorrect")
	ErrInvalidOrderStatus  = errors.New("unknown order status")
)
