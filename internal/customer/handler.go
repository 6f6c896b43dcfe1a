package customer

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/wallet-pay/wallet_pay/internal/api"
)

// View is the transport representation of a customer. Credential fields are
// never exposed.
type View struct {
	ID       string `json:"id"`
	Document string `json:"document"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Public returns the exposable view of the customer.
func (c Customer) Public() View {
	return View{ID: c.ID, Document: c.Document, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

// Handler exposes customer registration over HTTP.
type Handler struct {
	service *Service
}

// NewHandler constructs a customer handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type registerRequest struct {
	Document string `json:"document"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// Register creates a customer record.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(api.Fail(api.CodeBadInput, err.Error()))
	}

	cust, err := h.service.Register(c.UserContext(), req.Document, req.Name, req.Email, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			return c.Status(http.StatusBadRequest).JSON(api.Fail(api.CodeBadInput, err.Error()))
		case errors.Is(err, ErrDuplicateEmail):
			return c.Status(http.StatusConflict).JSON(api.Fail(api.CodeConflict, err.Error()))
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(http.StatusOK).JSON(api.OK(cust.Public()))
}
