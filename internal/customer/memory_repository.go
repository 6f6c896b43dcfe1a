package customer

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]Customer
}

// NewMemoryRepository builds an in-memory customer store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{byEmail: make(map[string]Customer)}
}

func (r *memoryRepository) Create(_ context.Context, cust Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[cust.Email]; exists {
		return ErrDuplicateEmail
	}
	r.byEmail[cust.Email] = cust
	return nil
}

func (r *memoryRepository) FindByDocumentAndPhone(_ context.Context, document, phone string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cust := range r.byEmail {
		if cust.Document == document && cust.Phone == phone {
			return cust, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, cust := range r.byEmail {
		if cust.ID == id {
			return cust, nil
		}
	}
	return Customer{}, ErrNotFound
}
