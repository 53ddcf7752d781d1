package tracking

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lgpharma/herbal-shop-backend/internal/order"
)

type Handler struct {
	orders order.ServiceInterface
}

func NewHandler(orders order.ServiceInterface) *Handler {
	return &Handler{orders: orders}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/orders/:id/tracking", h.getTracking)
}

func (h *Handler) getTracking(c *fiber.Ctx) error {
	ord, err := h.orders.Find(c.Params("id"))
	if err != nil {
		switch err {
		case order.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(Project(ord))
}
