package cart

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lgpharma/herbal-shop-backend/internal/catalog"
)

// Handler delegates cart operations to the cart service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addToCart)
	app.Patch("/api/v1/cart/:id", h.updateQuantity)
	app.Delete("/api/v1/cart/:id", h.removeFromCart)
	app.Delete("/api/v1/cart", h.clearCart)
}

type addRequest struct {
	ProductID string `json:"productId"`
}

type quantityRequest struct {
	Delta int `json:"delta"`
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(addRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	view, err := h.service.Add(payload.ProductID)
	if err != nil {
		switch err {
		case catalog.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(view)
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	payload := new(quantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(h.service.UpdateQuantity(c.Params("id"), payload.Delta))
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	return c.JSON(h.service.Remove(c.Params("id")))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	h.service.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	return c.JSON(h.service.View())
}
