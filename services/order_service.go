package services

import (
	"errors"
	"fmt"

	"github.com/adityapawar327/Kick-It-Up/apperrors"
	"github.com/adityapawar327/Kick-It-Up/models"
	"gorm.io/gorm"
)

// OrderService creates and queries orders. Order creation is the only place
// where two tables are mutated together, so it runs inside one transaction.
type OrderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// CreateOrderInput is the buyer-supplied part of a new order.
type CreateOrderInput struct {
	SneakerID       uint   `json:"sneaker_id"`
	ShippingAddress string `json:"shipping_address"`
	PhoneNumber     string `json:"phone_number"`
}

// CreateOrder places an order for one unit of a sneaker on behalf of the
// resolved buyer. The sneaker price is snapshotted into the order and the
// stock decrement, SOLD flip and order insert commit atomically.
func (s *OrderService) CreateOrder(username string, in CreateOrderInput) (*models.Order, error) {
	var order models.Order

	err := s.db.Transaction(func(tx *gorm.DB) error {
		buyer, err := getUserByUsername(tx, username)
		if err != nil {
			return err
		}

		var sneaker models.Sneaker
		if err := tx.Preload("Seller").First(&sneaker, in.SneakerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrSneakerNotFound
			}
			return fmt.Errorf("load sneaker %d: %w", in.SneakerID, err)
		}

		if sneaker.Status != models.SneakerStatusAvailable {
			return apperrors.ErrSneakerNotAvailable
		}
		if sneaker.Stock < 1 {
			return apperrors.ErrOutOfStock
		}

		// Guarded decrement: the WHERE clause re-checks stock and status so
		// two concurrent orders can never both consume the last unit.
		res := tx.Model(&models.Sneaker{}).
			Where("id = ? AND stock >= 1 AND status = ?", sneaker.ID, models.SneakerStatusAvailable).
			UpdateColumn("stock", gorm.Expr("stock - 1"))
		if res.Error != nil {
			return fmt.Errorf("decrement stock for sneaker %d: %w", sneaker.ID, res.Error)
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrOutOfStock
		}

		// Flip to SOLD exactly when the decrement consumed the last unit.
		if err := tx.Model(&models.Sneaker{}).
			Where("id = ? AND stock = 0", sneaker.ID).
			UpdateColumn("status", models.SneakerStatusSold).Error; err != nil {
			return fmt.Errorf("mark sneaker %d sold: %w", sneaker.ID, err)
		}

		order = models.Order{
			BuyerID:         buyer.ID,
			SellerID:        sneaker.SellerID,
			SneakerID:       sneaker.ID,
			TotalAmount:     sneaker.Price,
			ShippingAddress: in.ShippingAddress,
			PhoneNumber:     in.PhoneNumber,
			Status:          models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrderByID(order.ID)
}

// GetMyOrders returns the resolved buyer's orders, newest first, with buyer,
// seller and sneaker fully loaded.
func (s *OrderService) GetMyOrders(username string) ([]models.Order, error) {
	buyer, err := getUserByUsername(s.db, username)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := s.hydrated().
		Where("buyer_id = ?", buyer.ID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("load orders for %s: %w", username, err)
	}
	return orders, nil
}

// GetOrderByID returns a single order with its relations loaded.
func (s *OrderService) GetOrderByID(id uint) (*models.Order, error) {
	if id == 0 {
		return nil, apperrors.ErrInvalidID
	}

	var order models.Order
	if err := s.hydrated().First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrderNotFound
		}
		return nil, fmt.Errorf("load order %d: %w", id, err)
	}
	return &order, nil
}

// UpdateOrderStatus sets an order's status. Transitions are deliberately
// unrestricted; only membership in the known status set is checked.
func (s *OrderService) UpdateOrderStatus(id uint, status string) (*models.Order, error) {
	if !models.KnownOrderStatus(status) {
		return nil, apperrors.ErrInvalidOrderStatus
	}

	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update order %d status: %w", id, err)
	}
	return order, nil
}

func (s *OrderService) hydrated() *gorm.DB {
	return s.db.
		Preload("Buyer").
		Preload("Seller").
		Preload("Sneaker").
		Preload("Sneaker.Seller")
}
