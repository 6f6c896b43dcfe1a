package wallet

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/wallet-pay/wallet_pay/internal/api"
	"github.com/wallet-pay/wallet_pay/internal/customer"
)

// Handler exposes wallet HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type rechargeRequest struct {
	Document string          `json:"document"`
	Phone    string          `json:"phone"`
	Amount   decimal.Decimal `json:"amount"`
}

type entryView struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// Recharge credits the customer's wallet.
func (h *Handler) Recharge(c *fiber.Ctx) error {
	var req rechargeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.Fail(api.CodeBadInput, err.Error()))
	}

	cust, entry, err := h.service.Recharge(c.UserContext(), req.Document, req.Phone, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrMissingFields),
			errors.Is(err, customer.ErrNotFound),
			errors.Is(err, ErrNonPositiveAmount):
			return c.Status(http.StatusBadRequest).JSON(api.Fail(api.CodeBadInput, err.Error()))
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(http.StatusOK).JSON(api.OK(fiber.Map{
		"customer": cust.Public(),
		"entry":    entryView{ID: entry.ID, Amount: entry.Amount},
	}))
}

// Balance returns the customer's derived balance.
func (h *Handler) Balance(c *fiber.Ctx) error {
	document := c.Query("document")
	phone := c.Query("phone")

	cust, balance, err := h.service.Balance(c.UserContext(), document, phone)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrMissingFields), errors.Is(err, customer.ErrNotFound):
			return c.Status(http.StatusBadRequest).JSON(api.Fail(api.CodeBadInput, err.Error()))
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(http.StatusOK).JSON(api.OK(fiber.Map{
		"customer": cust.Public(),
		"balance":  balance,
	}))
}
