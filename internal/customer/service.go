package customer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const maxFieldLength = 255

// defaultCredential seeds the stored hash for every new customer. Customers
// identify themselves by document and phone; the credential is never exposed.
const defaultCredential = "changeme"

// ErrMissingFields indicates a registration or lookup field is empty or
// exceeds the allowed length.
var ErrMissingFields = errors.New("all fields are required")

// Service manages customer registration and lookup.
type Service struct {
	repo Repository
}

// NewService creates a new customer service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new customer. The email address must be unique; a
// duplicate registration fails with ErrDuplicateEmail and creates nothing.
func (s *Service) Register(ctx context.Context, document, name, email, phone string) (Customer, error) {
	for _, field := range []string{document, name, email, phone} {
		if field == "" || len(field) > maxFieldLength {
			return Customer{}, ErrMissingFields
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultCredential), bcrypt.DefaultCost)
	if err != nil {
		return Customer{}, err
	}

	cust := Customer{
		ID:           uuid.NewString(),
		Document:     document,
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, cust); err != nil {
		return Customer{}, err
	}
	return cust, nil
}

// Get fetches a customer by identifier.
func (s *Service) Get(ctx context.Context, id string) (Customer, error) {
	return s.repo.FindByID(ctx, id)
}

// Lookup resolves the customer whose document and phone both match exactly.
func (s *Service) Lookup(ctx context.Context, document, phone string) (Customer, error) {
	if document == "" || phone == "" || len(document) > maxFieldLength || len(phone) > maxFieldLength {
		return Customer{}, ErrMissingFields
	}
	return s.repo.FindByDocumentAndPhone(ctx, document, phone)
}
