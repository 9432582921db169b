package handlers

import (
	"strconv"

	"github.com/adityapawar327/Kick-It-Up/services"
	"github.com/gofiber/fiber/v2"
)

type SneakerHandler struct {
	Sneakers *services.SneakerService
}

func NewSneakerHandler(sneakers *services.SneakerService) *SneakerHandler {
	return &SneakerHandler{Sneakers: sneakers}
}

// CreateSneaker - POST /api/sneakers
func (h *SneakerHandler) CreateSneaker(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	var req services.SneakerInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	sneaker, err := h.Sneakers.CreateSneaker(username, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Sneaker created", "data": sneaker})
}

// GetAllSneakers - GET /api/sneakers
func (h *SneakerHandler) GetAllSneakers(c *fiber.Ctx) error {
	sneakers, err := h.Sneakers.GetAllSneakers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": sneakers})
}

// GetAvailableSneakers - GET /api/sneakers/available
func (h *SneakerHandler) GetAvailableSneakers(c *fiber.Ctx) error {
	sneakers, err := h.Sneakers.GetAvailableSneakers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": sneakers})
}

// SearchSneakers - GET /api/sneakers/search?brand=... or ?name=...
func (h *SneakerHandler) SearchSneakers(c *fiber.Ctx) error {
	if brand := c.Query("brand"); brand != "" {
		sneakers, err := h.Sneakers.SearchByBrand(brand)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": sneakers})
	}

	if name := c.Query("name"); name != "" {
		sneakers, err := h.Sneakers.SearchByName(name)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"data": sneakers})
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter 'brand' or 'name' is required"})
}

// GetSneaker - GET /api/sneakers/:id
func (h *SneakerHandler) GetSneaker(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	sneaker, err := h.Sneakers.GetSneakerByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": sneaker})
}

// GetMySneakers - GET /api/my-sneakers
func (h *SneakerHandler) GetMySneakers(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	sneakers, err := h.Sneakers.GetMySneakers(username)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"data": sneakers})
}

// UpdateSneaker - PUT /api/sneakers/:id
func (h *SneakerHandler) UpdateSneaker(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	id, _ := strconv.Atoi(c.Params("id"))

	var req services.SneakerInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	sneaker, err := h.Sneakers.UpdateSneaker(uint(id), username, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Sneaker updated", "data": sneaker})
}

// DeleteSneaker - DELETE /api/sneakers/:id
func (h *SneakerHandler) DeleteSneaker(c *fiber.Ctx) error {
	username, ok := currentUsername(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user session"})
	}

	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.Sneakers.DeleteSneaker(uint(id), username); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Sneaker deleted"})
}
