package payment

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu       sync.Mutex
	requests map[string]Request
}

// NewMemoryRepository builds an in-memory payment request store for testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{requests: make(map[string]Request)}
}

func (r *memoryRepository) Create(_ context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[req.ID] = req
	return nil
}

func (r *memoryRepository) Get(_ context.Context, id string) (Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return Request{}, ErrRequestNotFound
	}
	return req, nil
}

func (r *memoryRepository) Confirm(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.requests[id]
	if !ok {
		return ErrRequestNotFound
	}
	if req.Status != StatusRequested {
		return ErrAlreadyConfirmed
	}
	req.Status = StatusConfirmed
	r.requests[id] = req
	return nil
}
