package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallet-pay/wallet_pay/internal/wallet"
)

// RegisterWalletRoutes wires wallet credit and balance endpoints.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler) {
	r.Post("/wallet/recharge", h.Recharge)
	r.Get("/wallet/balance", h.Balance)
}
