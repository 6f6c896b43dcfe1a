package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enumerates the lifecycle states of a payment request.
type Status string

const (
	// StatusRequested is the initial state: the token has been issued but no
	// funds have moved.
	StatusRequested Status = "requested"
	// StatusConfirmed is the terminal state: the token was verified and the
	// debit entry appended. A confirmed request can never be confirmed again.
	StatusConfirmed Status = "confirmed"
)

// Request is a pending or confirmed payment. The debit ledger entry is
// created at the moment of confirmation and never before.
type Request struct {
	ID         string
	CustomerID string
	Amount     decimal.Decimal
	Token      string
	Status     Status
	CreatedAt  time.Time
}
