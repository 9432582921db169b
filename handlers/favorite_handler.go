package handlers

import (
	"strconv"

	"github.com/adityapawar327/Kick-It-Up/services"
	"github.com/gofiber/fiber/v2"
)

type FavoriteHandler struct {
	Favorites *services.FavoriteService
}

func NewFavoriteHandler(favorites *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{Favorites: favorites}
}

// AddFavorite - POST /api/favorites/:sneakerId
func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	sneakerID, _ := strconv.Atoi(c.Params("sneakerId"))

	favorite, err := h.Favorites.AddFavorite(username, uint(sneakerID))
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Added to favorites", "data": favorite})
}

// GetMyFavorites - GET /api/my-favorites
func (h *FavoriteHandler) GetMyFavorites(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	favorites, err := h.Favorites.GetMyFavorites(username)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": favorites})
}

// RemoveFavorite - DELETE /api/favorites/:sneakerId
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	sneakerID, _ := strconv.Atoi(c.Params("sneakerId"))

	if err := h.Favorites.RemoveFavorite(username, uint(sneakerID)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Removed from favorites"})
}
