package wallet

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/wallet-pay/wallet_pay/internal/customer"
	"github.com/wallet-pay/wallet_pay/internal/ledger"
)

// ErrNonPositiveAmount occurs when a recharge is attempted with a zero or
// negative value. Distinct from the missing-field error so callers can tell
// the two apart.
var ErrNonPositiveAmount = errors.New("value must be greater than zero")

// Service exposes wallet credit and balance operations backed by the ledger.
type Service struct {
	customers *customer.Service
	ledger    ledger.Store
}

// NewService builds a wallet service instance.
func NewService(customers *customer.Service, store ledger.Store) *Service {
	return &Service{customers: customers, ledger: store}
}

// Recharge appends a credit entry for the customer identified by document and
// phone. The amount must be strictly positive; no upper bound is enforced.
func (s *Service) Recharge(ctx context.Context, document, phone string, amount decimal.Decimal) (customer.Customer, ledger.Entry, error) {
	cust, err := s.customers.Lookup(ctx, document, phone)
	if err != nil {
		return customer.Customer{}, ledger.Entry{}, err
	}

	if !amount.IsPositive() {
		return customer.Customer{}, ledger.Entry{}, ErrNonPositiveAmount
	}

	entry, err := s.ledger.Append(ctx, cust.ID, amount)
	if err != nil {
		return customer.Customer{}, ledger.Entry{}, err
	}
	return cust, entry, nil
}

// Balance resolves the customer and recomputes their balance from the full
// entry set. Nothing is cached: the result always reflects the entries
// committed at the time of the read.
func (s *Service) Balance(ctx context.Context, document, phone string) (customer.Customer, decimal.Decimal, error) {
	cust, err := s.customers.Lookup(ctx, document, phone)
	if err != nil {
		return customer.Customer{}, decimal.Zero, err
	}

	balance, err := s.ledger.SumFor(ctx, cust.ID)
	if err != nil {
		return customer.Customer{}, decimal.Zero, err
	}
	return cust, balance, nil
}
