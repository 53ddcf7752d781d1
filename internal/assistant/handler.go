package assistant

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/assistant/products", h.getProducts)
	app.Get("/api/v1/assistant/orders", h.getOrders)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	return c.JSON(h.service.ListProducts())
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	return c.JSON(h.service.ListOrders())
}
