package payment

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/wallet-pay/wallet_pay/internal/api"
	"github.com/wallet-pay/wallet_pay/internal/customer"
)

const requestFeedback = "an email with the request id and confirmation token has been sent; both are required to confirm the purchase"

// Handler exposes payment endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a payment handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type paymentRequest struct {
	Document string          `json:"document"`
	Phone    string          `json:"phone"`
	Amount   decimal.Decimal `json:"amount"`
}

type confirmRequest struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

type requestView struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
}

// Request creates a payment request and triggers token delivery. The token
// itself is never part of the response.
func (h *Handler) Request(c *fiber.Ctx) error {
	var req paymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.Fail(api.CodeBadInput, err.Error()))
	}

	created, cust, err := h.service.Request(c.UserContext(), req.Document, req.Phone, req.Amount)
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
		"request":  requestView{ID: created.ID, Amount: created.Amount},
		"feedback": requestFeedback,
	}))
}

// Confirm verifies the token and settles the payment against the wallet.
func (h *Handler) Confirm(c *fiber.Ctx) error {
	var req confirmRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.Fail(api.CodeBadInput, err.Error()))
	}

	cust, balance, err := h.service.Confirm(c.UserContext(), req.ID, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, ErrTokenMismatch), errors.Is(err, ErrAlreadyConfirmed):
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
