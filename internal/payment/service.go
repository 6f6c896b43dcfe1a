package payment

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wallet-pay/wallet_pay/internal/customer"
	"github.com/wallet-pay/wallet_pay/internal/ledger"
	"github.com/wallet-pay/wallet_pay/internal/notification"
)

// Confirmation tokens are 6-digit codes drawn uniformly from this range.
// Token uniqueness is scoped to the request id it is paired with; the token
// is a shared secret, not a lookup key.
const (
	tokenMin = 111111
	tokenMax = 999999
)

var (
	// ErrNonPositiveAmount occurs when a payment is requested with a zero or
	// negative value.
	ErrNonPositiveAmount = errors.New("value must be greater than zero")

	// ErrTokenMismatch indicates the request id is unknown or the supplied
	// token does not match the one issued for it.
	ErrTokenMismatch = errors.New("the request id or token is missing or does not match our records")
)

// Service drives the payment request lifecycle: requested on creation,
// confirmed exactly once on token verification, at which point the single
// debit entry is appended to the ledger.
type Service struct {
	repo      Repository
	customers *customer.Service
	ledger    ledger.Store
	notifier  notification.Notifier
	logger    *slog.Logger
}

// NewService constructs a payment service.
func NewService(repo Repository, customers *customer.Service, store ledger.Store, notifier notification.Notifier, logger *slog.Logger) *Service {
	return &Service{repo: repo, customers: customers, ledger: store, notifier: notifier, logger: logger}
}

// Request creates a payment request for the resolved customer and asks the
// notifier to deliver the confirmation token to their email address. No
// ledger entry is created at this stage. Notification failures are logged
// but do not fail the request: the record already exists and the caller is
// told where the token went.
func (s *Service) Request(ctx context.Context, document, phone string, amount decimal.Decimal) (Request, customer.Customer, error) {
	cust, err := s.customers.Lookup(ctx, document, phone)
	if err != nil {
		return Request{}, customer.Customer{}, err
	}

	if !amount.IsPositive() {
		return Request{}, customer.Customer{}, ErrNonPositiveAmount
	}

	req := Request{
		ID:         uuid.NewString(),
		CustomerID: cust.ID,
		Amount:     amount,
		Token:      newToken(),
		Status:     StatusRequested,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return Request{}, customer.Customer{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.Send(ctx, cust.Email, req.ID, req.Token); err != nil && s.logger != nil {
			s.logger.Warn("confirmation token delivery failed",
				slog.String("request_id", req.ID),
				slog.Any("error", err),
			)
		}
	}

	return req, cust, nil
}

// Confirm verifies the token, transitions the request to confirmed and
// appends the debit entry. The transition is a compare-and-swap on status,
// so a retried or duplicated call can never debit the wallet twice.
func (s *Service) Confirm(ctx context.Context, requestID, token string) (customer.Customer, decimal.Decimal, error) {
	if requestID == "" || token == "" {
		return customer.Customer{}, decimal.Zero, ErrTokenMismatch
	}

	req, err := s.repo.Get(ctx, requestID)
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return customer.Customer{}, decimal.Zero, ErrTokenMismatch
		}
		return customer.Customer{}, decimal.Zero, err
	}

	if req.Token != token {
		return customer.Customer{}, decimal.Zero, ErrTokenMismatch
	}

	if err := s.repo.Confirm(ctx, req.ID); err != nil {
		return customer.Customer{}, decimal.Zero, err
	}

	if _, err := s.ledger.Append(ctx, req.CustomerID, req.Amount.Neg()); err != nil {
		return customer.Customer{}, decimal.Zero, err
	}

	cust, err := s.customers.Get(ctx, req.CustomerID)
	if err != nil {
		return customer.Customer{}, decimal.Zero, err
	}

	balance, err := s.ledger.SumFor(ctx, req.CustomerID)
	if err != nil {
		return customer.Customer{}, decimal.Zero, err
	}

	return cust, balance, nil
}

func newToken() string {
	return strconv.Itoa(tokenMin + rand.Intn(tokenMax-tokenMin+1))
}
