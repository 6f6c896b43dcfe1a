package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PostgresStore persists ledger entries in PostgreSQL. The entries table is
// insert-only; balances are derived with SUM at read time.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constructs a Postgres-backed ledger store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Append inserts an immutable entry for the customer.
func (s *PostgresStore) Append(ctx context.Context, customerID string, amount decimal.Decimal) (Entry, error) {
	if amount.IsZero() {
		return Entry{}, ErrZeroAmount
	}

	custID, err := uuid.Parse(customerID)
	if err != nil {
		return Entry{}, fmt.Errorf("parse customer id: %w", err)
	}

	entryID := uuid.New()
	entry := Entry{
		ID:         entryID.String(),
		CustomerID: customerID,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}

	_, err = s.db.Exec(ctx, `INSERT INTO entries (id, customer_id, amount, created_at)
        VALUES ($1, $2, $3::numeric, $4)`, entryID, custID, entry.Amount.String(), entry.CreatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("append entry: %w", err)
	}
	return entry, nil
}

// SumFor returns the arithmetic sum of the customer's entries, zero when the
// customer has none.
func (s *PostgresStore) SumFor(ctx context.Context, customerID string) (decimal.Decimal, error) {
	custID, err := uuid.Parse(customerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse customer id: %w", err)
	}

	const query = `SELECT COALESCE(SUM(amount), 0)::text FROM entries WHERE customer_id = $1`
	var raw string
	if err := s.db.QueryRow(ctx, query, custID).Scan(&raw); err != nil {
		return decimal.Zero, fmt.Errorf("sum entries: %w", err)
	}

	sum, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse balance: %w", err)
	}
	return sum, nil
}
