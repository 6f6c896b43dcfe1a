package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallet-pay/wallet_pay/internal/payment"
)

// RegisterPaymentRoutes wires the two-step payment endpoints.
func RegisterPaymentRoutes(r fiber.Router, h *payment.Handler) {
	r.Post("/payments", h.Request)
	r.Post("/payments/confirm", h.Confirm)
}
