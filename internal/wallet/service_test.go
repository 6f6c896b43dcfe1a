package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wallet-pay/wallet_pay/internal/customer"
	"github.com/wallet-pay/wallet_pay/internal/ledger"
)

func newTestService(t *testing.T) (*Service, *customer.Service) {
	t.Helper()
	customers := customer.NewService(customer.NewMemoryRepository())
	return NewService(customers, ledger.NewInMemory()), customers
}

func TestRechargeAndBalance(t *testing.T) {
	svc, customers := newTestService(t)
	ctx := context.Background()

	if _, err := customers.Register(ctx, "123456789", "Lorem Ipsum", "example@example.com", "987654321"); err != nil {
		t.Fatalf("register: %v", err)
	}

	cust, entry, err := svc.Recharge(ctx, "123456789", "987654321", decimal.NewFromInt(100_000))
	if err != nil {
		t.Fatalf("recharge: %v", err)
	}
	if entry.ID == "" || !entry.Amount.Equal(decimal.NewFromInt(100_000)) {
		t.Fatalf("unexpected entry: %+v", entry)
	}

	_, balance, err := svc.Balance(ctx, cust.Document, cust.Phone)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(100_000)) {
		t.Fatalf("expected balance 100000, got %s", balance)
	}
}

func TestRechargeZeroAmountIsDistinctError(t *testing.T) {
	svc, customers := newTestService(t)
	ctx := context.Background()

	if _, err := customers.Register(ctx, "123", "Name", "a@b.c", "321"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := svc.Recharge(ctx, "123", "321", decimal.Zero)
	if !errors.Is(err, ErrNonPositiveAmount) {
		t.Fatalf("expected ErrNonPositiveAmount, got %v", err)
	}
	if errors.Is(err, customer.ErrMissingFields) {
		t.Fatalf("zero amount must not be reported as a missing field")
	}
}

func TestRechargeMissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Recharge(context.Background(), "123", "", decimal.Zero)
	if !errors.Is(err, customer.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestRechargeUnknownCustomer(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Recharge(context.Background(), "123", "44", decimal.NewFromInt(10))
	if !errors.Is(err, customer.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBalanceWithoutEntriesIsZero(t *testing.T) {
	svc, customers := newTestService(t)
	ctx := context.Background()

	if _, err := customers.Register(ctx, "123", "Name", "a@b.c", "321"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, balance, err := svc.Balance(ctx, "123", "321")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.IsZero() {
		t.Fatalf("expected zero balance, got %s", balance)
	}
}
