package wishlist

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lgpharma/herbal-shop-backend/internal/catalog"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/wishlist", h.getWishlist)
	app.Post("/api/v1/wishlist/toggle", h.toggle)
}

type toggleRequest struct {
	ProductID string `json:"productId"`
}

func (h *Handler) toggle(c *fiber.Ctx) error {
	payload := new(toggleRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	saved, err := h.service.Toggle(payload.ProductID)
	if err != nil {
		switch err {
		case catalog.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"productId": payload.ProductID, "saved": saved})
}

func (h *Handler) getWishlist(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}
