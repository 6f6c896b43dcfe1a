package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	// ErrRequestNotFound indicates no payment request exists with the given id.
	ErrRequestNotFound = errors.New("payment request not found")

	// ErrAlreadyConfirmed indicates the request was confirmed before; its
	// token is spent and cannot authorize another debit.
	ErrAlreadyConfirmed = errors.New("payment request already confirmed")
)

// Repository persists payment requests.
type Repository interface {
	Create(ctx context.Context, req Request) error
	Get(ctx context.Context, id string) (Request, error)
	// Confirm atomically transitions the request from requested to confirmed.
	// Out of any number of concurrent callers exactly one succeeds; the rest
	// get ErrAlreadyConfirmed.
	Confirm(ctx context.Context, id string) error
}

// PostgresRepository stores payment requests in PostgreSQL. The confirmed
// transition is a single conditional UPDATE guarded by the current status.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed payment repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a payment request in the requested state.
func (r *PostgresRepository) Create(ctx context.Context, req Request) error {
	reqID, err := uuid.Parse(req.ID)
	if err != nil {
		return fmt.Errorf("parse request id: %w", err)
	}
	custID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return fmt.Errorf("parse customer id: %w", err)
	}

	_, err = r.db.Exec(ctx, `INSERT INTO payment_requests (id, customer_id, amount, token, status, created_at)
        VALUES ($1, $2, $3::numeric, $4, $5, $6)`,
		reqID, custID, req.Amount.String(), req.Token, string(req.Status), req.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("insert payment request: %w", err)
	}
	return nil
}

// Get fetches a payment request by identifier.
func (r *PostgresRepository) Get(ctx context.Context, id string) (Request, error) {
	reqID, err := uuid.Parse(id)
	if err != nil {
		return Request{}, ErrRequestNotFound
	}

	row := r.db.QueryRow(ctx, `SELECT id, customer_id, amount::text, token, status, created_at
        FROM payment_requests WHERE id = $1`, reqID)

	var (
		custID    uuid.UUID
		rawAmount string
		status    string
		createdAt time.Time
		req       Request
	)
	if err := row.Scan(&reqID, &custID, &rawAmount, &req.Token, &status, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Request{}, ErrRequestNotFound
		}
		return Request{}, fmt.Errorf("find payment request: %w", err)
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return Request{}, fmt.Errorf("parse amount: %w", err)
	}

	req.ID = reqID.String()
	req.CustomerID = custID.String()
	req.Amount = amount
	req.Status = Status(status)
	req.CreatedAt = createdAt.UTC()
	return req, nil
}

// Confirm flips the status from requested to confirmed in one conditional
// statement, so two concurrent confirmations cannot both win.
func (r *PostgresRepository) Confirm(ctx context.Context, id string) error {
	reqID, err := uuid.Parse(id)
	if err != nil {
		return ErrRequestNotFound
	}

	cmd, err := r.db.Exec(ctx, `UPDATE payment_requests SET status = $1
        WHERE id = $2 AND status = $3`, string(StatusConfirmed), reqID, string(StatusRequested))
	if err != nil {
		return fmt.Errorf("confirm payment request: %w", err)
	}
	if cmd.RowsAffected() > 0 {
		return nil
	}

	// The update matched nothing: either the request does not exist or it was
	// already confirmed.
	var status string
	if err := r.db.QueryRow(ctx, `SELECT status FROM payment_requests WHERE id = $1`, reqID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrRequestNotFound
		}
		return fmt.Errorf("confirm payment request: %w", err)
	}
	return ErrAlreadyConfirmed
}
