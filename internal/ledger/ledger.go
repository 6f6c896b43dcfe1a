package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrZeroAmount occurs when an append is attempted with a zero amount.
// Entries carry a signed non-zero value: positive for credits (recharges),
// negative for debits (confirmed payments).
var ErrZeroAmount = errors.New("entry amount must be non-zero")

// Entry is a single immutable ledger record. Entries are only ever appended;
// a customer's balance is always the sum of their entries, never a stored
// counter.
type Entry struct {
	ID         string
	CustomerID string
	Amount     decimal.Decimal
	CreatedAt  time.Time
}

// Store defines the contract implemented by ledger backends (e.g. Postgres).
// There is no update or delete operation: the append is the atomic unit of
// truth.
type Store interface {
	Append(ctx context.Context, customerID string, amount decimal.Decimal) (Entry, error)
	SumFor(ctx context.Context, customerID string) (decimal.Decimal, error)
}
