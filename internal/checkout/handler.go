package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/lgpharma/herbal-shop-backend/internal/order"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/checkout", h.getSession)
	app.Post("/api/v1/checkout/open", h.open)
	app.Post("/api/v1/checkout/proceed", h.proceed)
	app.Post("/api/v1/checkout/details", h.submitDetails)
	app.Post("/api/v1/checkout/method", h.selectMethod)
	app.Post("/api/v1/checkout/payment", h.submitPayment)
	app.Post("/api/v1/checkout/back", h.back)
	app.Post("/api/v1/checkout/close", h.close)
}

func (h *Handler) getSession(c *fiber.Ctx) error {
	return c.JSON(h.service.View())
}

func (h *Handler) open(c *fiber.Ctx) error {
	return h.respond(c, h.service.Open())
}

func (h *Handler) proceed(c *fiber.Ctx) error {
	return h.respond(c, h.service.Proceed())
}

func (h *Handler) submitDetails(c *fiber.Ctx) error {
	payload := new(ShippingDetails)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return h.respond(c, h.service.SubmitDetails(*payload))
}

type methodRequest struct {
	Method order.PaymentMethod `json:"method"`
}

func (h *Handler) selectMethod(c *fiber.Ctx) error {
	payload := new(methodRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return h.respond(c, h.service.SelectMethod(payload.Method))
}

type paymentRequest struct {
	TxnID string       `json:"txnId"`
	Card  *CardPayment `json:"card"`
}

// submitPayment shapes the request into the sub-flow selected earlier
// in the session; the transition rejects a mismatch.
func (h *Handler) submitPayment(c *fiber.Ctx) error {
	payload := new(paymentRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var exec PaymentExecution
	switch h.service.Session().Method {
	case order.PaymentUPI:
		exec = UPIPayment{TxnID: payload.TxnID}
	case order.PaymentCard:
		if payload.Card == nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "card details are required"})
		}
		exec = *payload.Card
	case order.PaymentCOD:
		exec = CODPayment{}
	default:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "no payment method selected"})
	}
	return h.respond(c, h.service.SubmitPayment(exec))
}

func (h *Handler) back(c *fiber.Ctx) error {
	return h.respond(c, h.service.Back())
}

func (h *Handler) close(c *fiber.Ctx) error {
	return h.respond(c, h.service.Close())
}

func (h *Handler) respond(c *fiber.Ctx, err error) error {
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": verr.Reason,
				"field":   verr.Field,
			})
		case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(h.service.View())
}
