package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type inMemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]Entry
}

// NewInMemory creates a concurrency-safe in-memory ledger useful for unit tests.
func NewInMemory() Store {
	return &inMemoryStore{entries: make(map[string][]Entry)}
}

func (s *inMemoryStore) Append(_ context.Context, customerID string, amount decimal.Decimal) (Entry, error) {
	if amount.IsZero() {
		return Entry{}, ErrZeroAmount
	}

	entry := Entry{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[customerID] = append(s.entries[customerID], entry)
	return entry, nil
}

func (s *inMemoryStore) SumFor(_ context.Context, customerID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := decimal.Zero
	for _, entry := range s.entries[customerID] {
		sum = sum.Add(entry.Amount)
	}
	return sum, nil
}
