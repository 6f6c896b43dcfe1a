package customer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrDuplicateEmail indicates a customer with the same email address is
	// already registered.
	ErrDuplicateEmail = errors.New("a customer with that email address already exists")

	// ErrNotFound indicates no customer matches the given document and phone.
	ErrNotFound = errors.New("customer is not registered")
)

// Repository persists customers.
type Repository interface {
	Create(ctx context.Context, cust Customer) error
	FindByDocumentAndPhone(ctx context.Context, document, phone string) (Customer, error)
	FindByID(ctx context.Context, id string) (Customer, error)
}

// PostgresRepository implements Repository using PostgreSQL. Email uniqueness
// relies on the unique index on customers.email, so concurrent registrations
// of the same address resolve to exactly one winner.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed customer repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new customer.
func (r *PostgresRepository) Create(ctx context.Context, cust Customer) error {
	custID, err := uuid.Parse(cust.ID)
	if err != nil {
		return fmt.Errorf("parse customer id: %w", err)
	}

	_, err = r.db.Exec(ctx, `INSERT INTO customers (id, document, name, email, phone, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		custID, cust.Document, cust.Name, cust.Email, cust.Phone, cust.PasswordHash, cust.CreatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// FindByDocumentAndPhone fetches the customer whose document and phone both
// match exactly.
func (r *PostgresRepository) FindByDocumentAndPhone(ctx context.Context, document, phone string) (Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT id, document, name, email, phone, password_hash, created_at
        FROM customers WHERE document = $1 AND phone = $2`, document, phone)

	var (
		id        uuid.UUID
		createdAt time.Time
		cust      Customer
	)
	if err := row.Scan(&id, &cust.Document, &cust.Name, &cust.Email, &cust.Phone, &cust.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, fmt.Errorf("find customer: %w", err)
	}
	cust.ID = id.String()
	cust.CreatedAt = createdAt.UTC()
	return cust, nil
}

// FindByID fetches a customer by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (Customer, error) {
	custID, err := uuid.Parse(id)
	if err != nil {
		return Customer{}, ErrNotFound
	}

	row := r.db.QueryRow(ctx, `SELECT id, document, name, email, phone, password_hash, created_at
        FROM customers WHERE id = $1`, custID)

	var (
		createdAt time.Time
		cust      Customer
	)
	if err := row.Scan(&custID, &cust.Document, &cust.Name, &cust.Email, &cust.Phone, &cust.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, fmt.Errorf("find customer: %w", err)
	}
	cust.ID = custID.String()
	cust.CreatedAt = createdAt.UTC()
	return cust, nil
}
