package handlers

import (
	"errors"

	"github.com/adityapawar327/Kick-It-Up/apperrors"
	"github.com/adityapawar327/Kick-It-Up/utils"
	"github.com/gofiber/fiber/v2"
)

// currentUsername reads the principal resolved by the auth middleware.
func currentUsername(c *fiber.Ctx) (string, bool) {
	username, ok := c.Locals("username").(string)
	return username, ok && username != ""
}

// respondError maps service errors onto HTTP statuses and the uniform
// {"error": message} body.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrSneakerNotFound),
		errors.Is(err, apperrors.ErrOrderNotFound),
		errors.Is(err, apperrors.ErrReviewNotFound),
		errors.Is(err, apperrors.ErrFavoriteNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSneakerNotAvailable),
		errors.Is(err, apperrors.ErrOutOfStock),
		errors.Is(err, apperrors.ErrAlreadyReviewed),
		errors.Is(err, apperrors.ErrAlreadyFavorited):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidID),
		errors.Is(err, apperrors.ErrInvalidOrderStatus),
		errors.Is(err, apperrors.ErrWrongPassword):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	utils.Error("request failed", map[string]any{
		"path":  c.Path(),
		"error": err.Error(),
	})
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
