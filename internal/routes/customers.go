package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallet-pay/wallet_pay/internal/customer"
)

// RegisterCustomerRoutes wires customer registration.
func RegisterCustomerRoutes(r fiber.Router, h *customer.Handler) {
	r.Post("/customers", h.Register)
}
