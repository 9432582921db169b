package handlers

import (
	"strconv"

	"github.com/adityapawar327/Kick-It-Up/services"
	"github.com/gofiber/fiber/v2"
)

type ReviewHandler struct {
	Reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{Reviews: reviews}
}

// CreateReview - POST /api/reviews
func (h *ReviewHandler) CreateReview(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	var req services.ReviewInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	review, err := h.Reviews.CreateReview(username, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Review created", "data": review})
}

// GetSneakerReviews - GET /api/sneakers/:id/reviews
func (h *ReviewHandler) GetSneakerReviews(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	reviews, err := h.Reviews.GetReviewsBySneaker(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": reviews})
}

// GetMyReviews - GET /api/my-reviews
func (h *ReviewHandler) GetMyReviews(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	reviews, err := h.Reviews.GetMyReviews(username)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": reviews})
}

// DeleteReview - DELETE /api/reviews/:id
func (h *ReviewHandler) DeleteReview(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.Reviews.DeleteReview(uint(id), username); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Review deleted"})
}
